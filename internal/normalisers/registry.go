package normalisers

import (
	"path/filepath"
	"strings"

	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
	"github.com/swimforge-labs/swimforge-cli/internal/normalisers/csv"
	"github.com/swimforge-labs/swimforge-cli/internal/normalisers/docx"
	"github.com/swimforge-labs/swimforge-cli/internal/normalisers/html"
	"github.com/swimforge-labs/swimforge-cli/internal/normalisers/json"
	"github.com/swimforge-labs/swimforge-cli/internal/normalisers/markdown"
	"github.com/swimforge-labs/swimforge-cli/internal/normalisers/plaintext"
)

// byExtension maps lowercase extensions to their normalisers.
var byExtension = buildRegistry(
	plaintext.New(),
	markdown.New(),
	csv.New(),
	json.New(),
	html.New(),
	docx.New(),
)

func buildRegistry(normalisers ...driven.Normaliser) map[string]driven.Normaliser {
	registry := make(map[string]driven.Normaliser)
	for _, n := range normalisers {
		for _, ext := range n.Extensions() {
			registry[ext] = n
		}
	}
	return registry
}

// ForPath returns the normaliser for a file path, or nil if the
// extension is not supported.
func ForPath(path string) driven.Normaliser {
	return byExtension[strings.ToLower(filepath.Ext(path))]
}

// Supported reports whether a file path has a supported extension.
func Supported(path string) bool {
	return ForPath(path) != nil
}
