// Package testutil gives tests across the module access to shared fixtures.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("reading test data %q: %w", name, err)
	}
	return data, nil
}

// Catalog returns a JSON array of 100 product records in the field order a
// typical API would emit: id, name, isActive, price, tags, metadata.
func Catalog() ([]byte, error) {
	return ReadTestData("catalog.json")
}
