// Package bundle models the schema bundle consumed by the code generator.
package bundle

import (
	"fmt"
	"strings"
)

// Bundle is the root of a schema bundle document.
type Bundle struct {
	V1          *SchemaBundleV1 `json:"v1" yaml:"v1"`
	SourceMapV1 *SourceMap      `json:"sourceMapV1,omitempty" yaml:"sourceMapV1,omitempty"`
}

type SchemaBundleV1 struct {
	EnumDefinitions      []EnumDefinition      `json:"enumDefinitions" yaml:"enumDefinitions"`
	TypeDefinitions      []TypeDefinition      `json:"typeDefinitions" yaml:"typeDefinitions"`
	ComponentDefinitions []ComponentDefinition `json:"componentDefinitions" yaml:"componentDefinitions"`
}

// SourceMap points definitions back at the schema files they came from. Only
// used for diagnostics.
type SourceMap struct {
	SourceReferences map[string]SourceReference `json:"sourceReferences,omitempty" yaml:"sourceReferences,omitempty"`
}

type SourceReference struct {
	FilePath string `json:"filePath" yaml:"filePath"`
	Line     uint32 `json:"line" yaml:"line"`
	Column   uint32 `json:"column" yaml:"column"`
}

type Identifier struct {
	QualifiedName string   `json:"qualifiedName" yaml:"qualifiedName"`
	Name          string   `json:"name" yaml:"name"`
	Path          []string `json:"path" yaml:"path"`
}

// Segments returns the dotted path of the identifier, falling back to the
// qualified name when path is not set.
func (id Identifier) Segments() []string {
	if len(id.Path) > 0 {
		return id.Path
	}
	return strings.Split(id.QualifiedName, ".")
}

type EnumDefinition struct {
	Identifier Identifier            `json:"identifier" yaml:"identifier"`
	Values     []EnumValueDefinition `json:"values" yaml:"values"`
}

type EnumValueDefinition struct {
	Identifier Identifier `json:"identifier" yaml:"identifier"`
	Value      uint32     `json:"value" yaml:"value"`
}

type TypeDefinition struct {
	Identifier       Identifier        `json:"identifier" yaml:"identifier"`
	FieldDefinitions []FieldDefinition `json:"fieldDefinitions" yaml:"fieldDefinitions"`
}

type FieldDefinition struct {
	Identifier Identifier `json:"identifier" yaml:"identifier"`
	FieldID    uint32     `json:"fieldId" yaml:"fieldId"`
	Transient  bool       `json:"transient,omitempty" yaml:"transient,omitempty"`

	SingularType *SingularType `json:"singularType,omitempty" yaml:"singularType,omitempty"`
	OptionType   *OptionType   `json:"optionType,omitempty" yaml:"optionType,omitempty"`
	ListType     *ListType     `json:"listType,omitempty" yaml:"listType,omitempty"`
	MapType      *MapType      `json:"mapType,omitempty" yaml:"mapType,omitempty"`
}

type SingularType struct {
	Type ValueTypeReference `json:"type" yaml:"type"`
}

type OptionType struct {
	InnerType ValueTypeReference `json:"innerType" yaml:"innerType"`
}

type ListType struct {
	InnerType ValueTypeReference `json:"innerType" yaml:"innerType"`
}

type MapType struct {
	KeyType   ValueTypeReference `json:"keyType" yaml:"keyType"`
	ValueType ValueTypeReference `json:"valueType" yaml:"valueType"`
}

// ValueTypeReference names exactly one of a primitive, an enum or a type.
type ValueTypeReference struct {
	Primitive string `json:"primitive,omitempty" yaml:"primitive,omitempty"`
	Enum      string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
}

type ComponentDefinition struct {
	Identifier         Identifier          `json:"identifier" yaml:"identifier"`
	ComponentID        uint32              `json:"componentId" yaml:"componentId"`
	DataDefinition     string              `json:"dataDefinition,omitempty" yaml:"dataDefinition,omitempty"`
	FieldDefinitions   []FieldDefinition   `json:"fieldDefinitions" yaml:"fieldDefinitions"`
	EventDefinitions   []EventDefinition   `json:"eventDefinitions,omitempty" yaml:"eventDefinitions,omitempty"`
	CommandDefinitions []CommandDefinition `json:"commandDefinitions,omitempty" yaml:"commandDefinitions,omitempty"`
}

type EventDefinition struct {
	Identifier Identifier `json:"identifier" yaml:"identifier"`
	Type       string     `json:"type" yaml:"type"`
	EventIndex uint32     `json:"eventIndex" yaml:"eventIndex"`
}

type CommandDefinition struct {
	Identifier   Identifier `json:"identifier" yaml:"identifier"`
	RequestType  string     `json:"requestType" yaml:"requestType"`
	ResponseType string     `json:"responseType" yaml:"responseType"`
	CommandIndex uint32     `json:"commandIndex" yaml:"commandIndex"`
}

type Shape uint8

const (
	ShapeSingular Shape = iota + 1
	ShapeOption
	ShapeList
	ShapeMap
)

func (s Shape) String() string {
	switch s {
	case ShapeSingular:
		return "singular"
	case ShapeOption:
		return "option"
	case ShapeList:
		return "list"
	case ShapeMap:
		return "map"
	default:
		return "invalid"
	}
}

// Shape reports which of the four field shapes is set. Exactly one must be.
func (f FieldDefinition) Shape() (Shape, error) {
	var shapes []Shape
	if f.SingularType != nil {
		shapes = append(shapes, ShapeSingular)
	}
	if f.OptionType != nil {
		shapes = append(shapes, ShapeOption)
	}
	if f.ListType != nil {
		shapes = append(shapes, ShapeList)
	}
	if f.MapType != nil {
		shapes = append(shapes, ShapeMap)
	}
	if len(shapes) != 1 {
		return 0, fmt.Errorf("field %q must set exactly one of singularType, optionType, listType, mapType (found %d)", f.Identifier.Name, len(shapes))
	}
	return shapes[0], nil
}

// Value returns the element reference for singular, option and list fields.
func (f FieldDefinition) Value() ValueTypeReference {
	switch {
	case f.SingularType != nil:
		return f.SingularType.Type
	case f.OptionType != nil:
		return f.OptionType.InnerType
	case f.ListType != nil:
		return f.ListType.InnerType
	default:
		return ValueTypeReference{}
	}
}

type Kind uint8

const (
	KindPrimitive Kind = iota + 1
	KindEnum
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindType:
		return "type"
	default:
		return "invalid"
	}
}

func (r ValueTypeReference) Kind() (Kind, error) {
	n := 0
	var kind Kind
	if r.Primitive != "" {
		n, kind = n+1, KindPrimitive
	}
	if r.Enum != "" {
		n, kind = n+1, KindEnum
	}
	if r.Type != "" {
		n, kind = n+1, KindType
	}
	if n != 1 {
		return 0, fmt.Errorf("value type reference must set exactly one of primitive, enum, type (found %d)", n)
	}
	return kind, nil
}

func (r ValueTypeReference) String() string {
	switch {
	case r.Primitive != "":
		return r.Primitive
	case r.Enum != "":
		return "enum " + r.Enum
	case r.Type != "":
		return "type " + r.Type
	default:
		return "<empty>"
	}
}
