// =============================================================================
// Inventory Sync - File Utilities
// =============================================================================
//
// This module provides the small set of file helpers shared by the export
// and scraper commands: directory management and UTF-8 JSON reading/writing.
//
// JSON FILES:
//   The frontend serves the exported files verbatim, so they are written
//   indented, with HTML escaping disabled (product names contain '&' and
//   CJK text that must stay readable in the raw files).
//
// =============================================================================

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// JoinPath joins path elements; thin wrapper kept so callers of this package
// do not import path/filepath for one call.
func JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}

// FileExists reports whether the path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteJSONFile writes v as indented UTF-8 JSON without HTML escaping.
func WriteJSONFile(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadJSONFile reads a JSON file into v.
func ReadJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
