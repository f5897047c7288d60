package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageOf(t *testing.T) {
	b := &Bundle{V1: &SchemaBundleV1{
		TypeDefinitions: []TypeDefinition{
			{Identifier: Identifier{QualifiedName: "example.Outer"}},
			{Identifier: Identifier{QualifiedName: "example.Outer.Inner"}},
			{Identifier: Identifier{QualifiedName: "example.other.Marker", Path: []string{"example", "other", "Marker"}}},
			{Identifier: Identifier{QualifiedName: "Root"}},
		},
	}}
	idx := NewIndex(b)

	tests := []struct {
		name  string
		pkg   []string
		names []string
	}{
		{"example.Outer", []string{"example"}, []string{"Outer"}},
		{"example.Outer.Inner", []string{"example"}, []string{"Outer", "Inner"}},
		{"example.other.Marker", []string{"example", "other"}, []string{"Marker"}},
		{"Root", []string{}, []string{"Root"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, names := idx.PackageOf(idx.Types[tt.name].Identifier)
			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestComponentFields(t *testing.T) {
	data := TypeDefinition{
		Identifier:       Identifier{QualifiedName: "game.Data"},
		FieldDefinitions: []FieldDefinition{{Identifier: Identifier{Name: "x"}, FieldID: 1}},
	}
	b := &Bundle{V1: &SchemaBundleV1{TypeDefinitions: []TypeDefinition{data}}}
	idx := NewIndex(b)

	withData := &ComponentDefinition{DataDefinition: "game.Data"}
	assert.Equal(t, data.FieldDefinitions, idx.ComponentFields(withData))

	own := &ComponentDefinition{FieldDefinitions: []FieldDefinition{{FieldID: 2}}}
	assert.Equal(t, own.FieldDefinitions, idx.ComponentFields(own))
	assert.True(t, idx.Defines("game.Data"))
	assert.False(t, idx.Defines("game"))
}
