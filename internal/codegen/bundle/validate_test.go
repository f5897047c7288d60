package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func ref(primitive string) ValueTypeReference {
	return ValueTypeReference{Primitive: primitive}
}

func field(name string, id uint32, r ValueTypeReference) FieldDefinition {
	return FieldDefinition{
		Identifier:   Identifier{Name: name},
		FieldID:      id,
		SingularType: &SingularType{Type: r},
	}
}

func validBundle() *Bundle {
	return &Bundle{V1: &SchemaBundleV1{
		EnumDefinitions: []EnumDefinition{{
			Identifier: Identifier{QualifiedName: "game.Team"},
			Values:     []EnumValueDefinition{{Identifier: Identifier{Name: "RED"}, Value: 1}},
		}},
		TypeDefinitions: []TypeDefinition{
			{Identifier: Identifier{QualifiedName: "game.Hit"}, FieldDefinitions: []FieldDefinition{field("amount", 1, ref("Int32"))}},
		},
		ComponentDefinitions: []ComponentDefinition{{
			Identifier:       Identifier{QualifiedName: "game.Health"},
			ComponentID:      1,
			FieldDefinitions: []FieldDefinition{field("current", 1, ref("Int32"))},
			EventDefinitions: []EventDefinition{{Identifier: Identifier{Name: "hit"}, Type: "game.Hit", EventIndex: 1}},
			CommandDefinitions: []CommandDefinition{{
				Identifier: Identifier{Name: "heal"}, RequestType: "game.Hit", ResponseType: "game.Hit", CommandIndex: 0,
			}},
		}},
	}}
}

func TestValidateAcceptsValidBundle(t *testing.T) {
	assert.NoError(t, validBundle().Validate())
}

func TestValidateMissingV1(t *testing.T) {
	assert.ErrorIs(t, (&Bundle{}).Validate(), ErrMissingV1)
	var b *Bundle
	assert.ErrorIs(t, b.Validate(), ErrMissingV1)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	b := validBundle()
	b.V1.EnumDefinitions = append(b.V1.EnumDefinitions, EnumDefinition{
		Identifier: Identifier{QualifiedName: "game.Hit"},
		Values: []EnumValueDefinition{
			{Identifier: Identifier{Name: "A"}, Value: 1},
			{Identifier: Identifier{Name: "B"}, Value: 1},
		},
	})
	health := &b.V1.ComponentDefinitions[0]
	health.FieldDefinitions = append(health.FieldDefinitions,
		field("current", 0, ref("Int32")),
		field("team", 2, ValueTypeReference{Enum: "game.Nope"}),
		FieldDefinition{Identifier: Identifier{Name: "shapeless"}, FieldID: 3},
		FieldDefinition{
			Identifier: Identifier{Name: "lookup"},
			FieldID:    4,
			MapType:    &MapType{KeyType: ValueTypeReference{Type: "game.Hit"}, ValueType: ref("Int32")},
		},
		field("odd", 5, ref("Int128")),
	)
	health.EventDefinitions = append(health.EventDefinitions, EventDefinition{Identifier: Identifier{Name: "again"}, Type: "game.Miss", EventIndex: 1})
	b.V1.ComponentDefinitions = append(b.V1.ComponentDefinitions, ComponentDefinition{
		Identifier:     Identifier{QualifiedName: "game.Mana"},
		ComponentID:    1,
		DataDefinition: "game.Missing",
	})

	err := b.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"type redeclares enum",
		`value 1 of "B" already used by "A"`,
		`field "current" has invalid id 0`,
		`duplicate field name "current"`,
		`unknown enum "game.Nope"`,
		"must set exactly one of singularType",
		"map keys must be primitives or enums",
		`unknown primitive "Int128"`,
		"event index 1 declared twice",
		`unknown type "game.Miss"`,
		"component id 1 already used by game.Health",
		`data definition "game.Missing" is not a type`,
	} {
		assert.Contains(t, msg, want)
	}
	assert.GreaterOrEqual(t, len(multierr.Errors(err)), 12)
}

func TestValidateUsesSourceMap(t *testing.T) {
	b := validBundle()
	b.V1.ComponentDefinitions[0].ComponentID = 0
	b.SourceMapV1 = &SourceMap{SourceReferences: map[string]SourceReference{
		"game.Health": {FilePath: "game.schema", Line: 12},
	}}

	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.Health (game.schema:12): component id must be non-zero")
}
