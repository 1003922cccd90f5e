package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jimg-beep/recipes/pkg/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanFindsSupportedTypes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "carbonara.txt"), "eggs and guanciale")
	writeFile(t, filepath.Join(root, "FOCACCIA.MD"), "# Focaccia")
	writeFile(t, filepath.Join(root, "salsa verde.HTML"), "<p>parsley</p>")
	writeFile(t, filepath.Join(root, "sub", "tarte.pdf"), "%PDF-1.4")
	writeFile(t, filepath.Join(root, "notes.docx"), "ignored")
	writeFile(t, filepath.Join(root, "Makefile"), "ignored")

	files, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []struct {
		name string
		typ  types.FileType
	}{
		{"FOCACCIA.MD", types.TypeText},
		{"carbonara.txt", types.TypeText},
		{"salsa verde.HTML", types.TypeHTML},
		{"tarte.pdf", types.TypePDF},
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d: %+v", len(files), len(want), files)
	}
	for i, w := range want {
		if files[i].Name != w.name {
			t.Errorf("files[%d].Name = %q, want %q", i, files[i].Name, w.name)
		}
		if files[i].Type != w.typ {
			t.Errorf("files[%d].Type = %q, want %q", i, files[i].Type, w.typ)
		}
	}
}

func TestScanLexicalOrder(t *testing.T) {
	root := t.TempDir()
	// Created out of order on purpose; discovery must not depend on it.
	writeFile(t, filepath.Join(root, "z.txt"), "z")
	writeFile(t, filepath.Join(root, "b", "inner.txt"), "inner")
	writeFile(t, filepath.Join(root, "a.txt"), "a")

	files, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	wantPaths := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b", "inner.txt"),
		filepath.Join(root, "z.txt"),
	}
	if len(files) != len(wantPaths) {
		t.Fatalf("got %d files, want %d", len(files), len(wantPaths))
	}
	for i, want := range wantPaths {
		if files[i].Path != want {
			t.Errorf("files[%d].Path = %q, want %q", i, files[i].Path, want)
		}
	}
}

func TestScanRecordsSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "beans.txt"), "beans")
	writeFile(t, filepath.Join(root, "empty.txt"), "")

	files, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Name != "beans.txt" || files[0].Size != 5 {
		t.Errorf("got %s size %d, want beans.txt size 5", files[0].Name, files[0].Size)
	}
	// Empty files are still discovered; content checks happen later.
	if files[1].Name != "empty.txt" || files[1].Size != 0 {
		t.Errorf("got %s size %d, want empty.txt size 0", files[1].Name, files[1].Size)
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "no-such-dir")); err == nil {
		t.Fatal("Scan on a missing root: want error, got nil")
	}
}

func TestScanSymlinkRoot(t *testing.T) {
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "soup.txt"), "simmer slowly")

	link := filepath.Join(t.TempDir(), "recipes")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	files, err := Scan(link)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || files[0].Name != "soup.txt" {
		t.Fatalf("got %+v, want soup.txt through the link", files)
	}
	// Paths stay under the link, not its target.
	if want := filepath.Join(link, "soup.txt"); files[0].Path != want {
		t.Errorf("files[0].Path = %q, want %q", files[0].Path, want)
	}
}

func TestScanDanglingSymlinkRoot(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "recipes")
	if err := os.Symlink(filepath.Join(dir, "gone"), link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	if _, err := Scan(link); err == nil {
		t.Fatal("Scan on a dangling symlink root: want error, got nil")
	}
}

func TestScanFileRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "single.txt")
	writeFile(t, root, "not a directory")

	files, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("got %+v, want no files for a non-directory root", files)
	}
}

func TestScanIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory whose name looks like a recipe file must not be indexed.
	if err := os.MkdirAll(filepath.Join(root, "trap.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, "trap.txt", "real.txt"), "nested")

	files, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || files[0].Name != "real.txt" {
		t.Fatalf("got %+v, want only real.txt", files)
	}
}
