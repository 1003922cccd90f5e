// Package scan discovers recipe source documents under a directory tree.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jimg-beep/recipes/pkg/types"
)

// File is one discovered recipe document.
type File struct {
	// Path locates the source file, rooted at the scan root.
	Path string

	// Name is the file's base name.
	Name string

	// Type is the document format derived from the file extension.
	Type types.FileType

	// Size is the file's byte length at discovery time.
	Size int64
}

// Scan recursively enumerates the regular files under root whose extension
// maps to a supported FileType. Results come back in lexical path order, so
// the ids assigned downstream are reproducible run to run. A symlinked root
// is followed, with paths reported under the caller's root; a missing or
// unreadable root, including a dangling symlink, is the only error. A root
// that is not a directory yields no files; unreadable subtrees are skipped.
func Scan(root string) ([]File, error) {
	// Stat follows a symlinked root, so a dangling link fails here.
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading recipes directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	// WalkDir lstats its root and would treat a symlink as a plain entry
	// instead of descending into the target.
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("reading recipes directory %s: %w", root, err)
	}

	var files []File
	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == resolved {
				return fmt.Errorf("reading recipes directory %s: %w", root, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ft, ok := types.FileTypeForPath(path)
		if !ok {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			// Raced with a delete; treat the entry as gone.
			return nil
		}
		if resolved != root {
			if rel, relErr := filepath.Rel(resolved, path); relErr == nil {
				path = filepath.Join(root, rel)
			}
		}
		files = append(files, File{
			Path: path,
			Name: d.Name(),
			Type: ft,
			Size: fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
