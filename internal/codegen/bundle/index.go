package bundle

import "strings"

// Index resolves qualified names to definitions.
type Index struct {
	Enums      map[string]*EnumDefinition
	Types      map[string]*TypeDefinition
	Components map[string]*ComponentDefinition
}

// NewIndex indexes the bundle's definitions. Later duplicates overwrite earlier
// ones; Validate reports duplicates.
func NewIndex(b *Bundle) *Index {
	idx := &Index{
		Enums:      make(map[string]*EnumDefinition),
		Types:      make(map[string]*TypeDefinition),
		Components: make(map[string]*ComponentDefinition),
	}
	if b == nil || b.V1 == nil {
		return idx
	}
	for i := range b.V1.EnumDefinitions {
		e := &b.V1.EnumDefinitions[i]
		idx.Enums[e.Identifier.QualifiedName] = e
	}
	for i := range b.V1.TypeDefinitions {
		t := &b.V1.TypeDefinitions[i]
		idx.Types[t.Identifier.QualifiedName] = t
	}
	for i := range b.V1.ComponentDefinitions {
		c := &b.V1.ComponentDefinitions[i]
		idx.Components[c.Identifier.QualifiedName] = c
	}
	return idx
}

// Defines reports whether qualifiedName names any definition.
func (idx *Index) Defines(qualifiedName string) bool {
	if _, ok := idx.Enums[qualifiedName]; ok {
		return true
	}
	if _, ok := idx.Types[qualifiedName]; ok {
		return true
	}
	_, ok := idx.Components[qualifiedName]
	return ok
}

// PackageOf splits an identifier into its package segments and the chain of
// enclosing definitions. "example.Outer.Inner" where example.Outer is a type
// yields (["example"], ["Outer", "Inner"]).
func (idx *Index) PackageOf(id Identifier) (pkg []string, names []string) {
	segments := id.Segments()
	cut := len(segments) - 1
	for cut > 0 && idx.Defines(strings.Join(segments[:cut], ".")) {
		cut--
	}
	return segments[:cut], segments[cut:]
}

// ComponentFields returns the fields of a component, taking them from its data
// definition when it has one.
func (idx *Index) ComponentFields(c *ComponentDefinition) []FieldDefinition {
	if c.DataDefinition != "" {
		if t, ok := idx.Types[c.DataDefinition]; ok {
			return t.FieldDefinitions
		}
	}
	return c.FieldDefinitions
}
