package bundle

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadJSON loads a bundle from a JSON reader.
func LoadJSON(r io.Reader) (*Bundle, error) {
	var b Bundle
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bundle json: %w", err)
	}
	return &b, nil
}

// LoadYAML loads a bundle from a YAML reader.
func LoadYAML(r io.Reader) (*Bundle, error) {
	var b Bundle
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bundle yaml: %w", err)
	}
	return &b, nil
}

// LoadFile loads a bundle, choosing the decoder from the file extension.
func LoadFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(data))
	default:
		return LoadJSON(bytes.NewReader(data))
	}
}

// Fingerprint hashes the canonical JSON form of the schema definitions. The
// source map is excluded, so moving definitions between files keeps it stable.
func (b *Bundle) Fingerprint() (uint64, error) {
	data, err := json.Marshal(b.V1)
	if err != nil {
		return 0, fmt.Errorf("encode bundle: %w", err)
	}
	return xxhash.Sum64(data), nil
}

// SourceOf returns "file:line" for a qualified name when the source map has it.
func (b *Bundle) SourceOf(qualifiedName string) string {
	if b.SourceMapV1 == nil {
		return ""
	}
	ref, ok := b.SourceMapV1.SourceReferences[qualifiedName]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", ref.FilePath, ref.Line)
}
