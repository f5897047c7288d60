package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/schemagen/internal/codegen/bundle"
)

func loadExample(t *testing.T) *bundle.Bundle {
	t.Helper()
	b, err := bundle.LoadFile("testdata/example.json")
	require.NoError(t, err)
	return b
}

// topLevelNames parses src and returns every top-level identifier it declares.
func topLevelNames(t *testing.T, src string) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, parser.ParseComments)
	require.NoError(t, err, src)

	names := make(map[string]bool)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return names
}

func TestGenerateCodeExampleBundle(t *testing.T) {
	b := loadExample(t)

	src, err := GenerateCode(b, Options{})
	require.NoError(t, err)

	names := topLevelNames(t, src)
	for _, want := range []string{
		"SchemaFingerprint", "RegisterComponents",
		"Color", "ColorGreen", "ColorRed", "ColorBlue", "NewColor",
		"Level", "LevelLow", "LevelHigh",
		"Coordinates", "NewCoordinates", "Empty", "Outer", "OuterInner", "Marker",
		"EverythingData", "Everything", "EverythingUpdate", "EverythingComponentID", "EverythingVTable",
		"Position", "PositionUpdate", "PositionComponentID", "PositionVTable",
		"Health", "HealthUpdate",
		"Tester", "TesterCommandRequest", "TesterCommandResponse",
		"TesterTestCommandIndex", "TesterTestCommandRequest", "TesterTestCommandResponse",
		"DecodeTesterCommandRequest", "DecodeTesterCommandResponse",
	} {
		assert.True(t, names[want], "missing declaration %s", want)
	}
	assert.False(t, names["DecodeHealthCommandRequest"])

	fp, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Contains(t, src, "// Code generated by schemagen. DO NOT EDIT.")
	assert.Contains(t, src, "package generated\n")
	assert.Contains(t, src, `"strconv"`)
	assert.Contains(t, src, fmt.Sprintf("const SchemaFingerprint uint64 = 0x%016x", fp))
	assert.Contains(t, src, "ColorGreen Color = 2")
	assert.Contains(t, src, "return ColorGreen")
	assert.Contains(t, src, "const PositionComponentID schema.ComponentID = 1000")
	assert.Contains(t, src, "schema.MapFunc(schema.Bool, schema.Enum[Color](), schema.CompareBool)")
	assert.Contains(t, src, "schema.Map(schema.BytesKey, schema.Uint32)")
	assert.Contains(t, src, "schema.Map(schema.Enum[Color](), schema.Nested[Coordinates]())")
	assert.Contains(t, src, "schema.ReadUpdate(cu, 3, schema.Optional(schema.String), schema.None[string])")
	assert.Contains(t, src, "schema.ReadUpdate(cu, 1, schema.Nested[Coordinates](), NewCoordinates)")
	assert.Contains(t, src, "schema.GetOrDefault(o, 1, schema.Nested[Coordinates](), NewCoordinates)")
	assert.Contains(t, src, "schema.GetOrDefault(o, 16, schema.Bytes, schema.Zero[[]byte])")
	assert.Contains(t, src, "schema.GetOrDefault(o, 1, schema.Enum[Level](), NewLevel)")
	assert.Contains(t, src, "schema.Optional(schema.Int32).Get(o, 19)")
	assert.Contains(t, src, "DamagedEvents []DamageEvent")
	assert.Contains(t, src, `schema.NewVTable[Position, PositionUpdate]("example.Position")`)
	assert.Contains(t, src, "return nil, schema.UnknownCommand[TesterCommandRequest](r.Index)")
	assert.Contains(t, src, "// --- example.other ---")
}

func TestGenerateCodeIsDeterministic(t *testing.T) {
	b := loadExample(t)

	first, err := GenerateCode(b, Options{})
	require.NoError(t, err)
	second, err := GenerateCode(b, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateCodeOptions(t *testing.T) {
	b := loadExample(t)

	src, err := GenerateCode(b, Options{
		PackageName:    "components",
		QualifiedNames: true,
		SchemaImport:   "example.com/runtime/schema",
	})
	require.NoError(t, err)

	names := topLevelNames(t, src)
	assert.True(t, names["ExampleOtherMarker"])
	assert.True(t, names["ExampleOuterInner"])
	assert.True(t, names["ExamplePositionVTable"])
	assert.False(t, names["Marker"])
	assert.Contains(t, src, "package components\n")
	assert.Contains(t, src, `"example.com/runtime/schema"`)
}

func primitive(name string) bundle.ValueTypeReference {
	return bundle.ValueTypeReference{Primitive: name}
}

func singular(name string, id uint32, ref bundle.ValueTypeReference) bundle.FieldDefinition {
	return bundle.FieldDefinition{
		Identifier:   bundle.Identifier{Name: name},
		FieldID:      id,
		SingularType: &bundle.SingularType{Type: ref},
	}
}

func typeDef(qualifiedName string, fields ...bundle.FieldDefinition) bundle.TypeDefinition {
	return bundle.TypeDefinition{
		Identifier:       bundle.Identifier{QualifiedName: qualifiedName},
		FieldDefinitions: fields,
	}
}

func TestGenerateCodeWithoutEnums(t *testing.T) {
	b := &bundle.Bundle{V1: &bundle.SchemaBundleV1{
		TypeDefinitions: []bundle.TypeDefinition{
			typeDef("game.Stats", singular("hp", 1, primitive("Uint32"))),
		},
	}}

	src, err := GenerateCode(b, Options{})
	require.NoError(t, err)
	assert.NotContains(t, src, `"strconv"`)
	assert.Contains(t, src, "HP uint32")
	assert.Contains(t, src, "func RegisterComponents(r *schema.Registry) error {\n\treturn nil\n}")
}

func TestGenerateCodeRejectsInvalidBundle(t *testing.T) {
	b := &bundle.Bundle{V1: &bundle.SchemaBundleV1{
		TypeDefinitions: []bundle.TypeDefinition{
			typeDef("game.Stats",
				singular("hp", 1, primitive("Uint32")),
				singular("mp", 1, primitive("Uint32")),
			),
		},
	}}

	_, err := GenerateCode(b, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reuses id 1")

	_, err = GenerateCode(&bundle.Bundle{}, Options{})
	assert.ErrorIs(t, err, bundle.ErrMissingV1)
}

func TestGenerateCodeRejectsValueCycles(t *testing.T) {
	b := &bundle.Bundle{V1: &bundle.SchemaBundleV1{
		TypeDefinitions: []bundle.TypeDefinition{
			typeDef("game.A", singular("b", 1, bundle.ValueTypeReference{Type: "game.B"})),
			typeDef("game.B", bundle.FieldDefinition{
				Identifier: bundle.Identifier{Name: "a"},
				FieldID:    1,
				OptionType: &bundle.OptionType{InnerType: bundle.ValueTypeReference{Type: "game.A"}},
			}),
		},
	}}

	_, err := GenerateCode(b, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.A -> game.B -> game.A")
}

func TestGenerateCodeAllowsRecursionThroughLists(t *testing.T) {
	b := &bundle.Bundle{V1: &bundle.SchemaBundleV1{
		TypeDefinitions: []bundle.TypeDefinition{
			typeDef("game.Node", bundle.FieldDefinition{
				Identifier: bundle.Identifier{Name: "children"},
				FieldID:    1,
				ListType:   &bundle.ListType{InnerType: bundle.ValueTypeReference{Type: "game.Node"}},
			}),
		},
	}}

	src, err := GenerateCode(b, Options{})
	require.NoError(t, err)
	assert.Contains(t, src, "Children []Node")
}

func TestGenerateCodeRejectsNameCollisions(t *testing.T) {
	b := &bundle.Bundle{V1: &bundle.SchemaBundleV1{
		TypeDefinitions: []bundle.TypeDefinition{
			typeDef("alpha.Item", singular("id", 1, primitive("Uint32"))),
			typeDef("beta.Item", singular("id", 1, primitive("Uint32"))),
		},
	}}

	_, err := GenerateCode(b, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides with alpha.Item")

	src, err := GenerateCode(b, Options{QualifiedNames: true})
	require.NoError(t, err)
	names := topLevelNames(t, src)
	assert.True(t, names["AlphaItem"])
	assert.True(t, names["BetaItem"])
}

func TestGenerateCodeRejectsMethodNamedFields(t *testing.T) {
	b := &bundle.Bundle{V1: &bundle.SchemaBundleV1{
		TypeDefinitions: []bundle.TypeDefinition{
			typeDef("game.Stats", singular("merge", 1, primitive("Bool"))),
		},
	}}

	_, err := GenerateCode(b, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generated method name")
}
