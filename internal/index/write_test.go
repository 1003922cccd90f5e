package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimg-beep/recipes/pkg/types"
)

func sampleRecipes() []types.Recipe {
	return []types.Recipe{
		{
			ID:       1,
			Filename: "carbonara.txt",
			FilePath: "recipes/001_carbonara.txt",
			Type:     types.TypeText,
			Content:  "Eggs, pecorino, guanciale & pepper. Café-style <strong>rich</strong>.",
			Preview:  "Eggs, pecorino, guanciale & pepper.",
			Size:     71,
		},
		{
			ID:       2,
			Filename: "empty.pdf",
			FilePath: "recipes/002_empty.pdf",
			Type:     types.TypePDF,
			Content:  "",
			Preview:  "",
			Size:     1204,
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes_index.json")
	want := sampleRecipes()

	require.NoError(t, WriteIndex(path, want))

	got, err := ReadIndex(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteIndexJSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes_index.json")
	require.NoError(t, WriteIndex(path, sampleRecipes()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	s := string(raw)
	assert.True(t, strings.HasPrefix(s, "[\n"), "index is a JSON array")
	assert.Contains(t, s, `"file_path": "recipes/001_carbonara.txt"`)
	assert.Contains(t, s, "Café-style <strong>rich</strong>", "no HTML or unicode escaping")
	assert.NotContains(t, s, `\u003c`)
}

func TestWriteIndexEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes_index.json")
	require.NoError(t, WriteIndex(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))

	got, err := ReadIndex(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteIndexYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes_index.yaml")
	want := sampleRecipes()

	require.NoError(t, WriteIndex(path, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "filename: carbonara.txt")

	got, err := ReadIndex(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteIndexOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes_index.json")
	require.NoError(t, WriteIndex(path, sampleRecipes()))
	require.NoError(t, WriteIndex(path, sampleRecipes()[:1]))

	got, err := ReadIndex(path)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestWriteIndexLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteIndex(filepath.Join(dir, "recipes_index.json"), sampleRecipes()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "recipes_index.json", entries[0].Name())
}

func TestReadIndexMissingFile(t *testing.T) {
	_, err := ReadIndex(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestReadIndexMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes_index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not an array"), 0o644))

	_, err := ReadIndex(path)
	require.Error(t, err)
}
