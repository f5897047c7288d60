package codegen

import (
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/zeusync/schemagen/internal/codegen/bundle"
)

type enumValueModel struct {
	ConstName  string
	SchemaName string
	Value      uint32
}

type enumModel struct {
	GoName        string
	QualifiedName string
	Values        []enumValueModel
}

type fieldModel struct {
	GoName     string
	SchemaName string
	ID         uint32
	Shape      bundle.Shape
	GoType     string
	Codec      string
	// Default is the value used by New<T>, empty when it is the Go zero value.
	Default string
	// DefaultFunc is a func() T producing the value a cleared field resets to.
	DefaultFunc string
}

type recordModel struct {
	GoName        string
	QualifiedName string
	Fields        []fieldModel
}

type eventModel struct {
	GoName string
	Index  uint32
	GoType string
	Codec  string
}

type commandModel struct {
	GoName       string
	Index        uint32
	RequestType  string
	ResponseType string
}

type componentModel struct {
	recordModel
	ID       uint32
	Events   []eventModel
	Commands []commandModel
}

// packageNode is one level of the dotted package tree.
type packageNode struct {
	Name       string
	Children   map[string]*packageNode
	Enums      []*enumModel
	Types      []*recordModel
	Components []*componentModel
}

func newPackageNode(name string) *packageNode {
	return &packageNode{Name: name, Children: make(map[string]*packageNode)}
}

func (p *packageNode) child(segments []string) *packageNode {
	node := p
	for i, seg := range segments {
		next, ok := node.Children[seg]
		if !ok {
			next = newPackageNode(strings.Join(segments[:i+1], "."))
			node.Children[seg] = next
		}
		node = next
	}
	return node
}

// walk visits packages depth first in name order.
func (p *packageNode) walk(fn func(*packageNode)) {
	fn(p)
	keys := make([]string, 0, len(p.Children))
	for k := range p.Children {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		p.Children[k].walk(fn)
	}
}

// model is the bundle resolved into Go names and codec expressions.
type model struct {
	root       *packageNode
	goNames    map[string]string
	reserved   map[string]string
	hasEnums   bool
	components []*componentModel
}

func buildModel(b *bundle.Bundle, opts Options) (*model, error) {
	idx := bundle.NewIndex(b)
	m := &model{
		root:     newPackageNode(""),
		goNames:  make(map[string]string),
		reserved: make(map[string]string),
	}
	for _, name := range []string{"RegisterComponents", "SchemaFingerprint"} {
		m.reserved[name] = "generated helper"
	}

	goName := func(id bundle.Identifier) string {
		pkg, names := idx.PackageOf(id)
		if opts.QualifiedNames {
			return toGoTypeName(append(slices.Clone(pkg), names...)...)
		}
		return toGoTypeName(names...)
	}

	// Names first, so field types can refer to definitions declared later.
	for _, e := range b.V1.EnumDefinitions {
		m.goNames[e.Identifier.QualifiedName] = goName(e.Identifier)
	}
	for _, t := range b.V1.TypeDefinitions {
		m.goNames[t.Identifier.QualifiedName] = goName(t.Identifier)
	}
	for _, c := range b.V1.ComponentDefinitions {
		m.goNames[c.Identifier.QualifiedName] = goName(c.Identifier)
	}

	if err := checkCycles(b, idx); err != nil {
		return nil, err
	}

	for _, e := range b.V1.EnumDefinitions {
		em, err := m.enum(e)
		if err != nil {
			return nil, err
		}
		pkg, _ := idx.PackageOf(e.Identifier)
		node := m.root.child(pkg)
		node.Enums = append(node.Enums, em)
		m.hasEnums = true
	}
	for _, t := range b.V1.TypeDefinitions {
		rm, err := m.record(t.Identifier, t.FieldDefinitions)
		if err != nil {
			return nil, err
		}
		if err := m.reserve(rm.QualifiedName, rm.GoName, "New"+rm.GoName); err != nil {
			return nil, err
		}
		pkg, _ := idx.PackageOf(t.Identifier)
		node := m.root.child(pkg)
		node.Types = append(node.Types, rm)
	}
	for i := range b.V1.ComponentDefinitions {
		c := &b.V1.ComponentDefinitions[i]
		cm, err := m.component(c, idx)
		if err != nil {
			return nil, err
		}
		pkg, _ := idx.PackageOf(c.Identifier)
		node := m.root.child(pkg)
		node.Components = append(node.Components, cm)
		m.components = append(m.components, cm)
	}

	m.root.walk(func(p *packageNode) {
		slices.SortFunc(p.Enums, func(a, b *enumModel) int { return strings.Compare(a.QualifiedName, b.QualifiedName) })
		slices.SortFunc(p.Types, func(a, b *recordModel) int { return strings.Compare(a.QualifiedName, b.QualifiedName) })
		slices.SortFunc(p.Components, func(a, b *componentModel) int { return strings.Compare(a.QualifiedName, b.QualifiedName) })
	})
	slices.SortFunc(m.components, func(a, b *componentModel) int { return int(a.ID) - int(b.ID) })
	return m, nil
}

// reserve claims top-level Go identifiers for a definition.
func (m *model) reserve(owner string, names ...string) error {
	for _, name := range names {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return fmt.Errorf("%s: %q is not a valid exported Go identifier", owner, name)
		}
		if prev, ok := m.reserved[name]; ok {
			return fmt.Errorf("%s: generated name %s collides with %s", owner, name, prev)
		}
		m.reserved[name] = owner
	}
	return nil
}

func (m *model) enum(e bundle.EnumDefinition) (*enumModel, error) {
	em := &enumModel{
		GoName:        m.goNames[e.Identifier.QualifiedName],
		QualifiedName: e.Identifier.QualifiedName,
	}
	names := []string{em.GoName, "New" + em.GoName}
	for _, v := range e.Values {
		constName := em.GoName + toGoEnumValueName(v.Identifier.Name)
		em.Values = append(em.Values, enumValueModel{
			ConstName:  constName,
			SchemaName: v.Identifier.Name,
			Value:      v.Value,
		})
		names = append(names, constName)
	}
	if err := m.reserve(em.QualifiedName, names...); err != nil {
		return nil, err
	}
	return em, nil
}

// methodNames are declared on generated records and updates, so no field may
// use them.
var methodNames = map[string]bool{
	"IntoObject":  true,
	"FromObject":  true,
	"ComponentID": true,
	"MergeUpdate": true,
	"IntoUpdate":  true,
	"FromUpdate":  true,
	"Merge":       true,
}

func (m *model) record(id bundle.Identifier, fields []bundle.FieldDefinition) (*recordModel, error) {
	rm := &recordModel{
		GoName:        m.goNames[id.QualifiedName],
		QualifiedName: id.QualifiedName,
	}
	seen := make(map[string]string)
	for _, f := range fields {
		fm, err := m.field(f)
		if err != nil {
			return nil, fmt.Errorf("%s: field %q: %w", id.QualifiedName, f.Identifier.Name, err)
		}
		if methodNames[fm.GoName] {
			return nil, fmt.Errorf("%s: field %q maps to %s, which is a generated method name", id.QualifiedName, f.Identifier.Name, fm.GoName)
		}
		if prev, ok := seen[fm.GoName]; ok {
			return nil, fmt.Errorf("%s: fields %q and %q both map to %s", id.QualifiedName, prev, f.Identifier.Name, fm.GoName)
		}
		seen[fm.GoName] = f.Identifier.Name
		rm.Fields = append(rm.Fields, fm)
	}
	slices.SortStableFunc(rm.Fields, func(a, b fieldModel) int { return int(a.ID) - int(b.ID) })
	return rm, nil
}

func (m *model) component(c *bundle.ComponentDefinition, idx *bundle.Index) (*componentModel, error) {
	rm, err := m.record(c.Identifier, idx.ComponentFields(c))
	if err != nil {
		return nil, err
	}
	cm := &componentModel{recordModel: *rm, ID: c.ComponentID}
	name := cm.GoName
	names := []string{
		name, "New" + name, name + "ComponentID", name + "Update", name + "VTable",
	}

	for _, e := range c.EventDefinitions {
		goType := m.goNames[e.Type]
		cm.Events = append(cm.Events, eventModel{
			GoName: toGoFieldName(e.Identifier.Name) + "Events",
			Index:  e.EventIndex,
			GoType: goType,
			Codec:  "schema.List(schema.Nested[" + goType + "]())",
		})
	}
	slices.SortFunc(cm.Events, func(a, b eventModel) int { return int(a.Index) - int(b.Index) })
	for _, ev := range cm.Events {
		for _, f := range cm.Fields {
			if f.GoName == ev.GoName {
				return nil, fmt.Errorf("%s: event field %s collides with a data field", cm.QualifiedName, ev.GoName)
			}
		}
	}

	if len(c.CommandDefinitions) > 0 {
		names = append(names,
			name+"CommandRequest", name+"CommandResponse",
			"Decode"+name+"CommandRequest", "Decode"+name+"CommandResponse",
		)
	}
	for _, cmd := range c.CommandDefinitions {
		cmdName := toGoFieldName(cmd.Identifier.Name)
		cm.Commands = append(cm.Commands, commandModel{
			GoName:       cmdName,
			Index:        cmd.CommandIndex,
			RequestType:  m.goNames[cmd.RequestType],
			ResponseType: m.goNames[cmd.ResponseType],
		})
		names = append(names, name+cmdName+"Index", name+cmdName+"Request", name+cmdName+"Response")
	}
	slices.SortFunc(cm.Commands, func(a, b commandModel) int { return int(a.Index) - int(b.Index) })

	if err := m.reserve(cm.QualifiedName, names...); err != nil {
		return nil, err
	}
	return cm, nil
}

func (m *model) field(f bundle.FieldDefinition) (fieldModel, error) {
	shape, err := f.Shape()
	if err != nil {
		return fieldModel{}, err
	}
	fm := fieldModel{
		GoName:     toGoFieldName(f.Identifier.Name),
		SchemaName: f.Identifier.Name,
		ID:         f.FieldID,
		Shape:      shape,
	}

	switch shape {
	case bundle.ShapeSingular:
		v, err := m.value(f.SingularType.Type, false)
		if err != nil {
			return fieldModel{}, err
		}
		fm.GoType, fm.Codec = v.goType, v.codec
		if v.constructor != "" {
			fm.Default = v.constructor + "()"
			fm.DefaultFunc = v.constructor
		} else {
			fm.DefaultFunc = "schema.Zero[" + v.goType + "]"
		}
	case bundle.ShapeOption:
		v, err := m.value(f.OptionType.InnerType, false)
		if err != nil {
			return fieldModel{}, err
		}
		fm.GoType = "schema.Option[" + v.goType + "]"
		fm.Codec = "schema.Optional(" + v.codec + ")"
		fm.DefaultFunc = "schema.None[" + v.goType + "]"
	case bundle.ShapeList:
		v, err := m.value(f.ListType.InnerType, false)
		if err != nil {
			return fieldModel{}, err
		}
		fm.GoType = "[]" + v.goType
		fm.Codec = "schema.List(" + v.codec + ")"
		fm.DefaultFunc = "schema.Zero[" + fm.GoType + "]"
	case bundle.ShapeMap:
		k, err := m.value(f.MapType.KeyType, true)
		if err != nil {
			return fieldModel{}, err
		}
		v, err := m.value(f.MapType.ValueType, false)
		if err != nil {
			return fieldModel{}, err
		}
		fm.GoType = "map[" + k.goType + "]" + v.goType
		if k.goType == "bool" {
			fm.Codec = "schema.MapFunc(" + k.codec + ", " + v.codec + ", schema.CompareBool)"
		} else {
			fm.Codec = "schema.Map(" + k.codec + ", " + v.codec + ")"
		}
		fm.DefaultFunc = "schema.Zero[" + fm.GoType + "]"
	}
	return fm, nil
}

type valueModel struct {
	goType      string
	codec       string
	constructor string
}

var primitiveModels = map[bundle.Primitive]valueModel{
	bundle.PrimitiveInt32:    {goType: "int32", codec: "schema.Int32"},
	bundle.PrimitiveInt64:    {goType: "int64", codec: "schema.Int64"},
	bundle.PrimitiveUint32:   {goType: "uint32", codec: "schema.Uint32"},
	bundle.PrimitiveUint64:   {goType: "uint64", codec: "schema.Uint64"},
	bundle.PrimitiveSint32:   {goType: "int32", codec: "schema.SInt32"},
	bundle.PrimitiveSint64:   {goType: "int64", codec: "schema.SInt64"},
	bundle.PrimitiveFixed32:  {goType: "uint32", codec: "schema.Fixed32"},
	bundle.PrimitiveFixed64:  {goType: "uint64", codec: "schema.Fixed64"},
	bundle.PrimitiveSfixed32: {goType: "int32", codec: "schema.SFixed32"},
	bundle.PrimitiveSfixed64: {goType: "int64", codec: "schema.SFixed64"},
	bundle.PrimitiveBool:     {goType: "bool", codec: "schema.Bool"},
	bundle.PrimitiveFloat:    {goType: "float32", codec: "schema.Float"},
	bundle.PrimitiveDouble:   {goType: "float64", codec: "schema.Double"},
	bundle.PrimitiveString:   {goType: "string", codec: "schema.String"},
	bundle.PrimitiveEntityID: {goType: "schema.EntityID", codec: "schema.Entity"},
	bundle.PrimitiveBytes:    {goType: "[]byte", codec: "schema.Bytes"},
}

func (m *model) value(ref bundle.ValueTypeReference, mapKey bool) (valueModel, error) {
	kind, err := ref.Kind()
	if err != nil {
		return valueModel{}, err
	}
	switch kind {
	case bundle.KindPrimitive:
		p, ok := bundle.ParsePrimitive(ref.Primitive)
		if !ok {
			return valueModel{}, fmt.Errorf("unknown primitive %q", ref.Primitive)
		}
		if mapKey && p == bundle.PrimitiveBytes {
			return valueModel{goType: "string", codec: "schema.BytesKey"}, nil
		}
		return primitiveModels[p], nil
	case bundle.KindEnum:
		name, ok := m.goNames[ref.Enum]
		if !ok {
			return valueModel{}, fmt.Errorf("unknown enum %q", ref.Enum)
		}
		return valueModel{goType: name, codec: "schema.Enum[" + name + "]()", constructor: "New" + name}, nil
	default:
		if mapKey {
			return valueModel{}, fmt.Errorf("map key cannot be type %q", ref.Type)
		}
		name, ok := m.goNames[ref.Type]
		if !ok {
			return valueModel{}, fmt.Errorf("unknown type %q", ref.Type)
		}
		return valueModel{goType: name, codec: "schema.Nested[" + name + "]()", constructor: "New" + name}, nil
	}
}

// checkCycles rejects types that contain themselves by value. Lists and maps
// break a cycle; singular and option fields do not.
func checkCycles(b *bundle.Bundle, idx *bundle.Index) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)

	var visit func(name string, trail []string) error
	visit = func(name string, trail []string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("type %s contains itself by value: %s", name, strings.Join(append(trail, name), " -> "))
		case done:
			return nil
		}
		state[name] = visiting
		if t, ok := idx.Types[name]; ok {
			for _, f := range t.FieldDefinitions {
				var ref bundle.ValueTypeReference
				switch {
				case f.SingularType != nil:
					ref = f.SingularType.Type
				case f.OptionType != nil:
					ref = f.OptionType.InnerType
				default:
					continue
				}
				if ref.Type == "" {
					continue
				}
				if err := visit(ref.Type, append(trail, name)); err != nil {
					return err
				}
			}
		}
		state[name] = done
		return nil
	}

	for _, t := range b.V1.TypeDefinitions {
		if err := visit(t.Identifier.QualifiedName, nil); err != nil {
			return err
		}
	}
	return nil
}
