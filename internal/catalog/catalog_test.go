package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jimg-beep/recipes/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.CatalogConfig{OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecipes() []types.Recipe {
	return []types.Recipe{
		{ID: 1, Filename: "soup.txt", FilePath: "recipes/001_soup.txt", Type: types.TypeText, Content: "simmer slowly", Preview: "simmer slowly", Size: 10},
		{ID: 2, Filename: "pie.pdf", FilePath: "recipes/002_pie.pdf", Type: types.TypePDF, Content: "blind bake", Preview: "blind bake", Size: 30},
		{ID: 3, Filename: "salad.txt", FilePath: "recipes/003_salad.txt", Type: types.TypeText, Content: "toss gently", Preview: "toss gently", Size: 20},
	}
}

func TestRebuildAndCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Rebuild(ctx, testRecipes()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}

	// A rebuild replaces, it does not append.
	if err := s.Rebuild(ctx, testRecipes()[:1]); err != nil {
		t.Fatalf("second Rebuild: %v", err)
	}
	n, err = s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count after rebuild = %d, want 1", n)
	}
}

func TestLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Rebuild(ctx, testRecipes()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	r, err := s.Lookup(ctx, 2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if r.Filename != "pie.pdf" || r.Type != types.TypePDF || r.Content != "blind bake" {
		t.Errorf("Lookup(2) = %+v", r)
	}

	if _, err := s.Lookup(ctx, 99); err == nil {
		t.Error("Lookup(99): want error for a missing id")
	}
}

func TestStatsByType(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Rebuild(ctx, testRecipes()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	stats, err := s.StatsByType(ctx)
	if err != nil {
		t.Fatalf("StatsByType: %v", err)
	}
	want := []TypeStat{
		{Type: types.TypePDF, Count: 1, TotalSize: 30},
		{Type: types.TypeText, Count: 2, TotalSize: 30},
	}
	if len(stats) != len(want) {
		t.Fatalf("got %d stat rows, want %d: %+v", len(stats), len(want), stats)
	}
	for i, w := range want {
		if stats[i] != w {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], w)
		}
	}
}

func TestIndexPath(t *testing.T) {
	got := IndexPath(types.CatalogConfig{})
	if got != filepath.Join(".", "recipes_index.json") {
		t.Errorf("IndexPath(zero) = %q", got)
	}

	got = IndexPath(types.CatalogConfig{OutputDir: "out", IndexFile: "idx.yaml"})
	if got != filepath.Join("out", "idx.yaml") {
		t.Errorf("IndexPath(custom) = %q", got)
	}
}
