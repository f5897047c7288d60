// Package codegen turns a schema bundle into Go source: enums, records,
// components with their update types, command variants and the registration
// function that wires them into a schema.Registry.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/zeusync/schemagen/internal/codegen/bundle"
	"github.com/zeusync/schemagen/pkg/observability/log"
)

const (
	DefaultPackageName  = "generated"
	DefaultSchemaImport = "github.com/zeusync/schemagen/pkg/schema"
)

// Options controls the generated file.
type Options struct {
	// PackageName is the Go package clause of the output.
	PackageName string
	// QualifiedNames prefixes every Go name with its schema package, so
	// example.other.Marker becomes ExampleOtherMarker.
	QualifiedNames bool
	// SchemaImport is the import path of the runtime package.
	SchemaImport string
	Logger       log.Log
}

func (o Options) withDefaults() Options {
	if o.PackageName == "" {
		o.PackageName = DefaultPackageName
	}
	if o.SchemaImport == "" {
		o.SchemaImport = DefaultSchemaImport
	}
	if o.Logger == nil {
		o.Logger = log.NewNop()
	}
	return o
}

// Generator writes Go source for one bundle.
type Generator struct {
	buf    *bytes.Buffer
	indent int
	opts   Options
}

func NewGenerator(opts Options) *Generator {
	return &Generator{
		buf:  &bytes.Buffer{},
		opts: opts.withDefaults(),
	}
}

// GenerateCode validates b and returns the formatted Go source for it.
func GenerateCode(b *bundle.Bundle, opts Options) (string, error) {
	return NewGenerator(opts).Generate(b)
}

func (g *Generator) Generate(b *bundle.Bundle) (string, error) {
	logger := g.opts.Logger.Named("codegen")

	if err := b.Validate(); err != nil {
		return "", fmt.Errorf("invalid schema bundle: %w", err)
	}
	fingerprint, err := b.Fingerprint()
	if err != nil {
		return "", err
	}
	m, err := buildModel(b, g.opts)
	if err != nil {
		return "", fmt.Errorf("invalid schema bundle: %w", err)
	}

	g.buf.Reset()
	g.indent = 0
	g.generateHeader(m, fingerprint)
	m.root.walk(func(p *packageNode) {
		if len(p.Enums)+len(p.Types)+len(p.Components) == 0 {
			return
		}
		g.writeLine("")
		g.writeLine("// --- %s ---", p.Name)
		for _, e := range p.Enums {
			g.generateEnum(e)
		}
		for _, t := range p.Types {
			g.generateRecord(t)
		}
		for _, c := range p.Components {
			g.generateComponent(c)
		}
	})
	g.generateRegister(m)

	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("format generated code: %w", err)
	}
	logger.Debug("generated code",
		log.String("package", g.opts.PackageName),
		log.Int("components", len(m.components)),
		log.Int("bytes", len(src)),
	)
	return string(src), nil
}

func (g *Generator) generateHeader(m *model, fingerprint uint64) {
	g.writeLine("// Code generated by schemagen. DO NOT EDIT.")
	g.writeLine("")
	g.writeLine("package %s", g.opts.PackageName)
	g.writeLine("")
	g.writeLine("import (")
	g.indent++
	if m.hasEnums {
		g.writeLine("%q", "strconv")
		g.writeLine("")
	}
	g.writeLine("%q", g.opts.SchemaImport)
	g.indent--
	g.writeLine(")")
	g.writeLine("")
	g.writeLine("// SchemaFingerprint identifies the bundle this file was generated from.")
	g.writeLine("const SchemaFingerprint uint64 = 0x%016x", fingerprint)
}

func (g *Generator) generateEnum(e *enumModel) {
	name := e.GoName
	g.writeLine("")
	g.writeLine("type %s uint32", name)
	g.writeLine("")
	g.writeLine("const (")
	g.indent++
	for _, v := range e.Values {
		g.writeLine("%s %s = %d", v.ConstName, name, v.Value)
	}
	g.indent--
	g.writeLine(")")
	g.writeLine("")
	g.writeLine("// New%s returns the first declared value.", name)
	g.writeLine("func New%s() %s {", name, name)
	g.writeLine("\treturn %s", e.Values[0].ConstName)
	g.writeLine("}")
	g.writeLine("")
	g.writeLine("func (v %s) Valid() bool {", name)
	g.indent++
	g.writeLine("switch v {")
	consts := make([]string, 0, len(e.Values))
	for _, v := range e.Values {
		consts = append(consts, v.ConstName)
	}
	g.writeLine("case %s:", strings.Join(consts, ", "))
	g.writeLine("\treturn true")
	g.writeLine("}")
	g.writeLine("return false")
	g.indent--
	g.writeLine("}")
	g.writeLine("")
	g.writeLine("func (v %s) String() string {", name)
	g.indent++
	g.writeLine("switch v {")
	for _, v := range e.Values {
		g.writeLine("case %s:", v.ConstName)
		g.writeLine("\treturn %q", v.SchemaName)
	}
	g.writeLine("}")
	g.writeLine("return %q + strconv.FormatUint(uint64(v), 10) + %q", name+"(", ")")
	g.indent--
	g.writeLine("}")
}

func (g *Generator) generateStruct(name string, fields []fieldModel) {
	g.writeLine("")
	if len(fields) == 0 {
		g.writeLine("type %s struct{}", name)
		return
	}
	g.writeLine("type %s struct {", name)
	g.indent++
	for _, f := range fields {
		g.writeLine("%s %s", f.GoName, f.GoType)
	}
	g.indent--
	g.writeLine("}")
}

func (g *Generator) generateConstructor(name string, fields []fieldModel) {
	var defaults []fieldModel
	for _, f := range fields {
		if f.Default != "" {
			defaults = append(defaults, f)
		}
	}
	g.writeLine("")
	g.writeLine("func New%s() %s {", name, name)
	g.indent++
	if len(defaults) == 0 {
		g.writeLine("return %s{}", name)
	} else {
		g.writeLine("return %s{", name)
		g.indent++
		for _, f := range defaults {
			g.writeLine("%s: %s,", f.GoName, f.Default)
		}
		g.indent--
		g.writeLine("}")
	}
	g.indent--
	g.writeLine("}")
}

func (g *Generator) generateObjectMethods(name string, fields []fieldModel) {
	g.writeLine("")
	if len(fields) == 0 {
		g.writeLine("func (v *%s) IntoObject(*schema.Object) {}", name)
		g.writeLine("")
		g.writeLine("func (v *%s) FromObject(*schema.Object) error {", name)
		g.writeLine("\treturn nil")
		g.writeLine("}")
		return
	}

	g.writeLine("func (v *%s) IntoObject(o *schema.Object) {", name)
	g.indent++
	for _, f := range fields {
		g.writeLine("%s.Add(o, %d, v.%s)", f.Codec, f.ID, f.GoName)
	}
	g.indent--
	g.writeLine("}")
	g.writeLine("")
	g.writeLine("func (v *%s) FromObject(o *schema.Object) error {", name)
	g.indent++
	g.writeLine("var err error")
	for _, f := range fields {
		if f.Shape == bundle.ShapeSingular {
			g.writeLine("if v.%s, err = schema.GetOrDefault(o, %d, %s, %s); err != nil {", f.GoName, f.ID, f.Codec, f.DefaultFunc)
		} else {
			g.writeLine("if v.%s, err = %s.Get(o, %d); err != nil {", f.GoName, f.Codec, f.ID)
		}
		g.writeLine("\treturn schema.AtField(err, %d)", f.ID)
		g.writeLine("}")
	}
	g.writeLine("return nil")
	g.indent--
	g.writeLine("}")
}

func (g *Generator) generateRecord(r *recordModel) {
	g.generateStruct(r.GoName, r.Fields)
	g.generateConstructor(r.GoName, r.Fields)
	g.generateObjectMethods(r.GoName, r.Fields)
}

func (g *Generator) generateComponent(c *componentModel) {
	name := c.GoName
	update := name + "Update"

	g.writeLine("")
	g.writeLine("const %sComponentID schema.ComponentID = %d", name, c.ID)
	g.generateRecord(&c.recordModel)
	g.writeLine("")
	g.writeLine("func (v *%s) ComponentID() schema.ComponentID {", name)
	g.writeLine("\treturn %sComponentID", name)
	g.writeLine("}")
	g.writeLine("")
	if len(c.Fields) == 0 {
		g.writeLine("func (v *%s) MergeUpdate(%s) {}", name, update)
	} else {
		g.writeLine("func (v *%s) MergeUpdate(u %s) {", name, update)
		g.indent++
		for _, f := range c.Fields {
			g.writeLine("if x, ok := u.%s.Get(); ok {", f.GoName)
			g.writeLine("\tv.%s = x", f.GoName)
			g.writeLine("}")
		}
		g.indent--
		g.writeLine("}")
	}

	g.generateUpdate(c)
	if len(c.Commands) > 0 {
		g.generateCommands(c)
	}

	g.writeLine("")
	g.writeLine("func %sVTable() schema.VTable {", name)
	g.indent++
	if len(c.Commands) > 0 {
		g.writeLine("return schema.WithCommands(")
		g.writeLine("\tschema.NewVTable[%s, %s](%q),", name, update, c.QualifiedName)
		g.writeLine("\tDecode%sCommandRequest,", name)
		g.writeLine("\tDecode%sCommandResponse,", name)
		g.writeLine(")")
	} else {
		g.writeLine("return schema.NewVTable[%s, %s](%q)", name, update, c.QualifiedName)
	}
	g.indent--
	g.writeLine("}")
	g.writeLine("")
	g.writeLine("var _ schema.Component[%s] = (*%s)(nil)", update, name)
	g.writeLine("var _ schema.Update[%s] = (*%s)(nil)", update, update)
}

func (g *Generator) generateUpdate(c *componentModel) {
	update := c.GoName + "Update"

	g.writeLine("")
	g.writeLine("// %s carries the changed fields of a %s. None leaves a field", update, c.GoName)
	g.writeLine("// untouched; Some of an empty value clears it.")
	if len(c.Fields)+len(c.Events) == 0 {
		g.writeLine("type %s struct{}", update)
	} else {
		g.writeLine("type %s struct {", update)
		g.indent++
		for _, f := range c.Fields {
			g.writeLine("%s schema.Option[%s]", f.GoName, f.GoType)
		}
		for _, e := range c.Events {
			g.writeLine("%s []%s", e.GoName, e.GoType)
		}
		g.indent--
		g.writeLine("}")
	}

	g.writeLine("")
	if len(c.Fields)+len(c.Events) == 0 {
		g.writeLine("func (u *%s) IntoUpdate(*schema.ComponentUpdate) {}", update)
		g.writeLine("")
		g.writeLine("func (u *%s) FromUpdate(*schema.ComponentUpdate) error {", update)
		g.writeLine("\treturn nil")
		g.writeLine("}")
		g.writeLine("")
		g.writeLine("func (u *%s) Merge(%s) {}", update, update)
		return
	}

	g.writeLine("func (u *%s) IntoUpdate(cu *schema.ComponentUpdate) {", update)
	g.indent++
	for _, f := range c.Fields {
		g.writeLine("schema.WriteUpdate(cu, %d, %s, u.%s)", f.ID, f.Codec, f.GoName)
	}
	for _, e := range c.Events {
		g.writeLine("%s.Add(cu.Events(), %d, u.%s)", e.Codec, e.Index, e.GoName)
	}
	g.indent--
	g.writeLine("}")

	g.writeLine("")
	g.writeLine("func (u *%s) FromUpdate(cu *schema.ComponentUpdate) error {", update)
	g.indent++
	g.writeLine("var err error")
	for _, f := range c.Fields {
		g.writeLine("if u.%s, err = schema.ReadUpdate(cu, %d, %s, %s); err != nil {", f.GoName, f.ID, f.Codec, f.DefaultFunc)
		g.writeLine("\treturn err")
		g.writeLine("}")
	}
	for _, e := range c.Events {
		g.writeLine("if u.%s, err = %s.Get(cu.Events(), %d); err != nil {", e.GoName, e.Codec, e.Index)
		g.writeLine("\treturn schema.AtField(err, %d)", e.Index)
		g.writeLine("}")
	}
	g.writeLine("return nil")
	g.indent--
	g.writeLine("}")

	g.writeLine("")
	g.writeLine("func (u *%s) Merge(other %s) {", update, update)
	g.indent++
	for _, f := range c.Fields {
		g.writeLine("if other.%s.IsSome() {", f.GoName)
		g.writeLine("\tu.%s = other.%s", f.GoName, f.GoName)
		g.writeLine("}")
	}
	for _, e := range c.Events {
		g.writeLine("u.%s = append(u.%s, other.%s...)", e.GoName, e.GoName, e.GoName)
	}
	g.indent--
	g.writeLine("}")
}

func (g *Generator) generateCommands(c *componentModel) {
	name := c.GoName
	reqIface := name + "CommandRequest"
	respIface := name + "CommandResponse"

	g.writeLine("")
	g.writeLine("const (")
	g.indent++
	for _, cmd := range c.Commands {
		g.writeLine("%s%sIndex schema.CommandIndex = %d", name, cmd.GoName, cmd.Index)
	}
	g.indent--
	g.writeLine(")")

	for _, dir := range []struct {
		iface, marker, kind, into, raw, ctor string
	}{
		{reqIface, "is" + reqIface, "Request", "IntoRequest", "CommandRequest", "NewCommandRequest"},
		{respIface, "is" + respIface, "Response", "IntoResponse", "CommandResponse", "NewCommandResponse"},
	} {
		g.writeLine("")
		g.writeLine("// %s is implemented by every %s command %s.", dir.iface, name, strings.ToLower(dir.kind))
		g.writeLine("type %s interface {", dir.iface)
		g.writeLine("\tschema.%s", dir.kind)
		g.writeLine("\t%s()", dir.marker)
		g.writeLine("}")

		for _, cmd := range c.Commands {
			variant := name + cmd.GoName + dir.kind
			payload := cmd.RequestType
			if dir.kind == "Response" {
				payload = cmd.ResponseType
			}
			index := name + cmd.GoName + "Index"

			g.writeLine("")
			g.writeLine("type %s struct {", variant)
			g.writeLine("\tPayload %s", payload)
			g.writeLine("}")
			g.writeLine("")
			g.writeLine("func (%s) CommandIndex() schema.CommandIndex {", variant)
			g.writeLine("\treturn %s", index)
			g.writeLine("}")
			g.writeLine("")
			g.writeLine("func (c %s) %s() *schema.%s {", variant, dir.into, dir.raw)
			g.writeLine("\tr := schema.%s(%s)", dir.ctor, index)
			g.writeLine("\tc.Payload.IntoObject(r.Payload)")
			g.writeLine("\treturn r")
			g.writeLine("}")
			g.writeLine("")
			g.writeLine("func (%s) %s() {}", variant, dir.marker)
		}

		g.writeLine("")
		g.writeLine("func Decode%s(r *schema.%s) (%s, error) {", dir.iface, dir.raw, dir.iface)
		g.indent++
		g.writeLine("switch r.Index {")
		for _, cmd := range c.Commands {
			variant := name + cmd.GoName + dir.kind
			g.writeLine("case %s%sIndex:", name, cmd.GoName)
			g.writeLine("\tvar c %s", variant)
			g.writeLine("\tif err := c.Payload.FromObject(r.Payload); err != nil {")
			g.writeLine("\t\treturn nil, err")
			g.writeLine("\t}")
			g.writeLine("\treturn c, nil")
		}
		g.writeLine("default:")
		g.writeLine("\treturn nil, schema.UnknownCommand[%s](r.Index)", dir.iface)
		g.writeLine("}")
		g.indent--
		g.writeLine("}")
	}
}

func (g *Generator) generateRegister(m *model) {
	g.writeLine("")
	g.writeLine("// RegisterComponents adds every component of the bundle to r.")
	g.writeLine("func RegisterComponents(r *schema.Registry) error {")
	g.indent++
	if len(m.components) == 0 {
		g.writeLine("return nil")
	} else {
		g.writeLine("for _, vt := range []schema.VTable{")
		for _, c := range m.components {
			g.writeLine("\t%sVTable(),", c.GoName)
		}
		g.writeLine("} {")
		g.writeLine("\tif err := r.Register(vt); err != nil {")
		g.writeLine("\t\treturn err")
		g.writeLine("\t}")
		g.writeLine("}")
		g.writeLine("return nil")
	}
	g.indent--
	g.writeLine("}")
}

func (g *Generator) writeLine(format string, args ...any) {
	if format == "" {
		g.buf.WriteString("\n")
		return
	}
	for i := 0; i < g.indent; i++ {
		g.buf.WriteString("\t")
	}
	if len(args) > 0 {
		fmt.Fprintf(g.buf, format, args...)
	} else {
		g.buf.WriteString(format)
	}
	g.buf.WriteString("\n")
}
