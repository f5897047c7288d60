// Package generated holds the code schemagen produces for the example bundle
// in internal/codegen/testdata. Its tests exercise the runtime end to end.
package generated

//go:generate go run ../../../cmd/schemagen generate ../../codegen/testdata/example.json -o generated.go -p generated
