package newick

import (
	"io"
	"os"
)

// Load reads Newick source from r and parses all trees in it.
func Load(r io.Reader, opts Options) ([]*Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseWithOptions(src, opts)
}

// Dump serializes trees to w in Newick format.
func Dump(w io.Writer, trees ...*Node) error {
	_, err := io.WriteString(w, Format(trees...))
	return err
}

// Read parses all trees from the Newick file at path.
func Read(path string, opts Options) ([]*Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseWithOptions(src, opts)
}

// Write serializes trees to the file at path.
func Write(path string, trees ...*Node) error {
	return os.WriteFile(path, []byte(Format(trees...)), 0o644)
}
