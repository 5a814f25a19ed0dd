package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles CSV documents.
type Normaliser struct{}

// New creates a new CSV normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Extensions returns the file extensions this normaliser handles.
func (n *Normaliser) Extensions() []string {
	return []string{".csv"}
}

// Normalise flattens CSV rows into "header: value" lines so terms stay
// adjacent to their column names for retrieval.
func (n *Normaliser) Normalise(path string, content []byte) (string, string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", "", fmt.Errorf("parsing csv: %w", err)
	}

	title := extractTitle(path)
	if len(records) == 0 {
		return title, "", nil
	}

	header := records[0]
	var sb strings.Builder
	for _, record := range records[1:] {
		parts := make([]string, 0, len(record))
		for i, field := range record {
			if i < len(header) && header[i] != "" {
				parts = append(parts, header[i]+": "+field)
			} else {
				parts = append(parts, field)
			}
		}
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}
	return title, strings.TrimSpace(sb.String()), nil
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
