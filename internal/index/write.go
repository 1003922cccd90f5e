// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/jimg-beep/recipes/pkg/types"
)

// WriteIndex serializes recipes to path, replacing any existing file. The
// extension selects the encoding: .yaml and .yml produce YAML, everything
// else JSON with two-space indent and HTML escaping off, so non-ASCII text
// is stored verbatim. The bytes go through a temp file in the destination
// directory and a rename, leaving either the old index or the new one,
// never a torn file. A nil or empty record set writes an empty array.
func WriteIndex(path string, recipes []types.Recipe) error {
	if recipes == nil {
		recipes = []types.Recipe{}
	}

	data, err := encodeIndex(path, recipes)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".index-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp index: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing index: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp index: %w", closeErr)
	}
	// CreateTemp opens the file 0600; the index is world-readable output.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("fixing temp index mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing index: %w", err)
	}
	return nil
}

func encodeIndex(path string, recipes []types.Recipe) ([]byte, error) {
	if isYAMLPath(path) {
		data, err := yaml.Marshal(recipes)
		if err != nil {
			return nil, fmt.Errorf("marshaling index: %w", err)
		}
		return data, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipes); err != nil {
		return nil, fmt.Errorf("marshaling index: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadIndex loads a previously written index. The extension selects the
// decoder the same way WriteIndex selects the encoder.
func ReadIndex(path string) ([]types.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}

	var recipes []types.Recipe
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &recipes); err != nil {
			return nil, fmt.Errorf("parsing index %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &recipes); err != nil {
			return nil, fmt.Errorf("parsing index %s: %w", path, err)
		}
	}
	return recipes, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
