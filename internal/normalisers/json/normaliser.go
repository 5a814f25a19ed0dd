// Package json flattens JSON documents into retrievable plain text.
package json

import (
	encjson "encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles JSON documents.
type Normaliser struct{}

// New creates a new JSON normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Extensions returns the file extensions this normaliser handles.
func (n *Normaliser) Extensions() []string {
	return []string{".json"}
}

// Normalise flattens nested JSON into "dotted.path: value" lines,
// sorted by path so the output is deterministic.
func (n *Normaliser) Normalise(path string, content []byte) (string, string, error) {
	var value any
	if err := encjson.Unmarshal(content, &value); err != nil {
		return "", "", fmt.Errorf("parsing json: %w", err)
	}

	lines := flatten(value, "")
	sort.Strings(lines)
	return extractTitle(path), strings.Join(lines, "\n"), nil
}

// flatten walks a decoded JSON value collecting leaf entries.
func flatten(value any, prefix string) []string {
	switch v := value.(type) {
	case map[string]any:
		var lines []string
		for key, child := range v {
			lines = append(lines, flatten(child, joinPath(prefix, key))...)
		}
		return lines
	case []any:
		var lines []string
		for i, child := range v {
			lines = append(lines, flatten(child, joinPath(prefix, fmt.Sprintf("%d", i)))...)
		}
		return lines
	case nil:
		return nil
	default:
		if prefix == "" {
			return []string{fmt.Sprintf("%v", v)}
		}
		return []string{fmt.Sprintf("%s: %v", prefix, v)}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// extractTitle extracts a human-readable title from a path.
func extractTitle(path string) string {
	filename := filepath.Base(path)
	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}
