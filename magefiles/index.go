//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Index builds the CLI and runs an indexing pass over dir into output/.
func Index(dir string) error {
	mg.Deps(Build)
	fmt.Printf("[index] Indexing %s into output/\n", dir)
	return sh.RunV(filepath.Join(binDir, binName), dir, "output")
}

// Catalog builds the CLI and loads output/recipes_index.json into the
// SQLite catalog database.
func Catalog() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "catalog", "build", "output")
}
