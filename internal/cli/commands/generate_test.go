package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/schemagen/internal/cli/config"
)

const exampleBundle = "../../codegen/testdata/example.json"

func absExample(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(exampleBundle)
	require.NoError(t, err)
	return path
}

func copyExample(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(exampleBundle)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestGenerateToStdout(t *testing.T) {
	bundlePath := absExample(t)
	t.Chdir(t.TempDir())

	out, err := execute(t, "generate", bundlePath, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "// Code generated by schemagen. DO NOT EDIT.")
	assert.Contains(t, out, "package generated\n")
	assert.Contains(t, out, "const PositionComponentID schema.ComponentID = 1000")
}

func TestGenerateSingleBundleIntoDirectory(t *testing.T) {
	bundlePath := absExample(t)
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t, "gen", bundlePath, "-o", "out", "-p", "components", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("out", "example.gen.go"))

	data, err := os.ReadFile(filepath.Join(dir, "out", "example.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package components\n")
}

func TestGenerateMultipleBundles(t *testing.T) {
	dir := t.TempDir()
	a := copyExample(t, dir, "a.json")
	b := copyExample(t, dir, "B-2.json")
	t.Chdir(dir)

	_, err := execute(t, "generate", a, b, "-o", "gen", "--workers", "2", "--log-level", "error")
	require.NoError(t, err)

	for pkg, file := range map[string]string{
		"a":  filepath.Join(dir, "gen", "a", "a.gen.go"),
		"b2": filepath.Join(dir, "gen", "b2", "b2.gen.go"),
	} {
		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), "package "+pkg+"\n")
	}
}

func TestGenerateUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	bundlePath := copyExample(t, dir, "example.json")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schemagen.yaml"), []byte(
		"bundles: ["+bundlePath+"]\n"+
			"output: out/components.go\n"+
			"package: components\n"+
			"qualified_names: true\n"+
			"log_level: error\n"), 0o644))
	t.Chdir(dir)

	_, err := execute(t, "generate")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "components.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package components\n")
	assert.Contains(t, string(data), "type ExampleOtherMarker struct")
}

func TestGenerateErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema bundles given")

	_, err = execute(t, "generate", "missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")

	_, err = execute(t, "generate", "a.json", "b.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory is required")
}

func TestPlanJobs(t *testing.T) {
	jobs, err := planJobs(&config.Config{Bundles: []string{"s/game.json"}, Package: "game"})
	require.NoError(t, err)
	assert.Equal(t, []generateJob{{bundle: "s/game.json", pkg: "game"}}, jobs)

	jobs, err = planJobs(&config.Config{Bundles: []string{"s/game.json"}, Output: "x/out.go", Package: "game"})
	require.NoError(t, err)
	assert.Equal(t, "x/out.go", jobs[0].output)

	_, err = planJobs(&config.Config{Bundles: []string{"a/game.json", "b/game.yaml"}, Output: "gen"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `package "game"`)
}

func TestPackageNameFor(t *testing.T) {
	assert.Equal(t, "gamecomponents", packageNameFor("schema/Game-Components.json"))
	assert.Equal(t, "schema3d", packageNameFor("3d.yaml"))
	assert.Equal(t, "schema", packageNameFor("---.json"))
}
