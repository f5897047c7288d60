package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlBundle = `
v1:
  enumDefinitions:
    - identifier: {qualifiedName: game.Team, name: Team}
      values:
        - identifier: {qualifiedName: game.Team.RED, name: RED}
          value: 1
  typeDefinitions:
    - identifier: {qualifiedName: game.Stats, name: Stats}
      fieldDefinitions:
        - identifier: {name: hp}
          fieldId: 1
          singularType: {type: {primitive: Uint32}}
        - identifier: {name: team}
          fieldId: 2
          optionType: {innerType: {enum: game.Team}}
  componentDefinitions:
    - identifier: {qualifiedName: game.Player, name: Player}
      componentId: 7
      dataDefinition: game.Stats
sourceMapV1:
  sourceReferences:
    game.Stats: {filePath: game.schema, line: 4, column: 1}
`

func TestLoadJSONExample(t *testing.T) {
	b, err := LoadFile("../testdata/example.json")
	require.NoError(t, err)
	require.NotNil(t, b.V1)

	assert.Len(t, b.V1.EnumDefinitions, 2)
	assert.Len(t, b.V1.ComponentDefinitions, 4)
	assert.NoError(t, b.Validate())
	assert.Equal(t, "schema/example.schema:40", b.SourceOf("example.Position"))
	assert.Empty(t, b.SourceOf("example.Nope"))
}

func TestLoadYAML(t *testing.T) {
	b, err := LoadYAML(strings.NewReader(yamlBundle))
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	stats := b.V1.TypeDefinitions[0]
	shape, err := stats.FieldDefinitions[1].Shape()
	require.NoError(t, err)
	assert.Equal(t, ShapeOption, shape)
	assert.Equal(t, "game.Team", stats.FieldDefinitions[1].Value().Enum)
	assert.Equal(t, "game.Stats", b.V1.ComponentDefinitions[0].DataDefinition)
	assert.Equal(t, "game.schema:4", b.SourceOf("game.Stats"))
}

func TestLoadFileChoosesDecoderByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlBundle), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, b.V1.TypeDefinitions, 1)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}

func TestFingerprintIgnoresSourceMap(t *testing.T) {
	a, err := LoadYAML(strings.NewReader(yamlBundle))
	require.NoError(t, err)
	b, err := LoadYAML(strings.NewReader(yamlBundle))
	require.NoError(t, err)
	b.SourceMapV1 = nil

	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fa, fb)

	b.V1.ComponentDefinitions[0].ComponentID = 8
	fc, err := b.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc)
}
