package driven

// Normaliser flattens one source format into plain text.
// The core treats document content as flat text; format-specific
// structure (markdown syntax, CSV rows, JSON nesting) is resolved here.
type Normaliser interface {
	// Extensions returns the file extensions this normaliser handles,
	// lowercase with a leading dot.
	Extensions() []string

	// Normalise flattens raw file content into a title and plain text.
	Normalise(path string, content []byte) (title, text string, err error)
}
