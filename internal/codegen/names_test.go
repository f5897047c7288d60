package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGoFieldName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"current", "Current"},
		{"last_attacker", "LastAttacker"},
		{"entity_id", "EntityID"},
		{"max_hp", "MaxHP"},
		{"api_url", "APIURL"},
		{"alreadyCamel", "AlreadyCamel"},
		{"trailing_", "Trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, toGoFieldName(tt.input))
		})
	}
}

func TestToGoEnumValueName(t *testing.T) {
	assert.Equal(t, "Green", toGoEnumValueName("GREEN"))
	assert.Equal(t, "DarkRed", toGoEnumValueName("DARK_RED"))
	assert.Equal(t, "Green", toGoEnumValueName("Green"))
	assert.Equal(t, "V2", toGoEnumValueName("V2"))
}

func TestToGoTypeName(t *testing.T) {
	assert.Equal(t, "OuterInner", toGoTypeName("Outer", "Inner"))
	assert.Equal(t, "ExampleOtherMarker", toGoTypeName("example", "other", "Marker"))
	assert.Equal(t, "Position", toGoTypeName("Position"))
}
