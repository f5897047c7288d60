package bundle

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

const maxFieldID = 1<<29 - 1

var ErrMissingV1 = errors.New("bundle has no v1 section")

// Validate checks everything the generator relies on and reports every problem
// it finds, not just the first.
func (b *Bundle) Validate() error {
	if b == nil || b.V1 == nil {
		return ErrMissingV1
	}
	v := validator{bundle: b, idx: NewIndex(b), seen: make(map[string]string)}
	return v.run()
}

type validator struct {
	bundle *Bundle
	idx    *Index
	seen   map[string]string
	err    error
}

func (v *validator) fail(where, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if src := v.bundle.SourceOf(where); src != "" {
		where = where + " (" + src + ")"
	}
	v.err = multierr.Append(v.err, fmt.Errorf("%s: %s", where, msg))
}

func (v *validator) declare(id Identifier, kind string) {
	name := id.QualifiedName
	if name == "" {
		v.fail(kind, "missing qualified name")
		return
	}
	if prev, ok := v.seen[name]; ok {
		v.fail(name, "%s redeclares %s", kind, prev)
		return
	}
	v.seen[name] = kind
}

func (v *validator) run() error {
	for i := range v.bundle.V1.EnumDefinitions {
		v.enum(&v.bundle.V1.EnumDefinitions[i])
	}
	for i := range v.bundle.V1.TypeDefinitions {
		t := &v.bundle.V1.TypeDefinitions[i]
		v.declare(t.Identifier, "type")
		v.fields(t.Identifier.QualifiedName, t.FieldDefinitions)
	}

	componentIDs := make(map[uint32]string)
	for i := range v.bundle.V1.ComponentDefinitions {
		c := &v.bundle.V1.ComponentDefinitions[i]
		name := c.Identifier.QualifiedName
		v.declare(c.Identifier, "component")
		if c.ComponentID == 0 {
			v.fail(name, "component id must be non-zero")
		} else if prev, ok := componentIDs[c.ComponentID]; ok {
			v.fail(name, "component id %d already used by %s", c.ComponentID, prev)
		} else {
			componentIDs[c.ComponentID] = name
		}
		v.component(c)
	}
	return v.err
}

func (v *validator) enum(e *EnumDefinition) {
	name := e.Identifier.QualifiedName
	v.declare(e.Identifier, "enum")
	if len(e.Values) == 0 {
		v.fail(name, "enum declares no values")
	}
	values := make(map[uint32]string)
	names := make(map[string]bool)
	for _, ev := range e.Values {
		if prev, ok := values[ev.Value]; ok {
			v.fail(name, "value %d of %q already used by %q", ev.Value, ev.Identifier.Name, prev)
		}
		values[ev.Value] = ev.Identifier.Name
		if names[ev.Identifier.Name] {
			v.fail(name, "duplicate enum value name %q", ev.Identifier.Name)
		}
		names[ev.Identifier.Name] = true
	}
}

func (v *validator) component(c *ComponentDefinition) {
	name := c.Identifier.QualifiedName
	if c.DataDefinition != "" {
		if _, ok := v.idx.Types[c.DataDefinition]; !ok {
			v.fail(name, "data definition %q is not a type", c.DataDefinition)
		}
		if len(c.FieldDefinitions) > 0 {
			v.fail(name, "component declares both a data definition and fields")
		}
	} else {
		v.fields(name, c.FieldDefinitions)
	}

	events := make(map[uint32]bool)
	for _, e := range c.EventDefinitions {
		if e.EventIndex == 0 || e.EventIndex > maxFieldID {
			v.fail(name, "event %q has invalid index %d", e.Identifier.Name, e.EventIndex)
		} else if events[e.EventIndex] {
			v.fail(name, "event index %d declared twice", e.EventIndex)
		}
		events[e.EventIndex] = true
		v.typeRef(name, "event "+e.Identifier.Name, e.Type)
	}

	commands := make(map[uint32]bool)
	for _, cmd := range c.CommandDefinitions {
		if commands[cmd.CommandIndex] {
			v.fail(name, "command index %d declared twice", cmd.CommandIndex)
		}
		commands[cmd.CommandIndex] = true
		v.typeRef(name, "command "+cmd.Identifier.Name+" request", cmd.RequestType)
		v.typeRef(name, "command "+cmd.Identifier.Name+" response", cmd.ResponseType)
	}
}

func (v *validator) typeRef(where, what, qualifiedName string) {
	if _, ok := v.idx.Types[qualifiedName]; !ok {
		v.fail(where, "%s refers to unknown type %q", what, qualifiedName)
	}
}

func (v *validator) fields(owner string, fields []FieldDefinition) {
	ids := make(map[uint32]string)
	names := make(map[string]bool)
	for _, f := range fields {
		fieldName := f.Identifier.Name
		if f.FieldID == 0 || f.FieldID > maxFieldID {
			v.fail(owner, "field %q has invalid id %d", fieldName, f.FieldID)
		} else if prev, ok := ids[f.FieldID]; ok {
			v.fail(owner, "field %q reuses id %d of %q", fieldName, f.FieldID, prev)
		}
		ids[f.FieldID] = fieldName
		if names[fieldName] {
			v.fail(owner, "duplicate field name %q", fieldName)
		}
		names[fieldName] = true

		shape, err := f.Shape()
		if err != nil {
			v.fail(owner, "%v", err)
			continue
		}
		if shape == ShapeMap {
			v.mapKey(owner, fieldName, f.MapType.KeyType)
			v.ref(owner, fieldName, f.MapType.ValueType)
			continue
		}
		v.ref(owner, fieldName, f.Value())
	}
}

func (v *validator) mapKey(owner, fieldName string, r ValueTypeReference) {
	kind, err := r.Kind()
	if err != nil {
		v.fail(owner, "field %q key: %v", fieldName, err)
		return
	}
	if kind == KindType {
		v.fail(owner, "field %q: map keys must be primitives or enums, found %s", fieldName, r)
		return
	}
	v.ref(owner, fieldName, r)
}

func (v *validator) ref(owner, fieldName string, r ValueTypeReference) {
	kind, err := r.Kind()
	if err != nil {
		v.fail(owner, "field %q: %v", fieldName, err)
		return
	}
	switch kind {
	case KindPrimitive:
		if _, ok := ParsePrimitive(r.Primitive); !ok {
			v.fail(owner, "field %q: unknown primitive %q", fieldName, r.Primitive)
		}
	case KindEnum:
		if _, ok := v.idx.Enums[r.Enum]; !ok {
			v.fail(owner, "field %q: unknown enum %q", fieldName, r.Enum)
		}
	case KindType:
		if _, ok := v.idx.Types[r.Type]; !ok {
			v.fail(owner, "field %q: unknown type %q", fieldName, r.Type)
		}
	}
}
