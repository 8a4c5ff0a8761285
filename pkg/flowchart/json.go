package flowchart

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type document struct {
	Name    string  `json:"name"`
	Comment string  `json:"comment,omitempty"`
	Options Options `json:"options"`
	Nodes   []Node  `json:"nodes"`
	Edges   []Edge  `json:"edges"`
}

// WriteJSON encodes the diagram as indented JSON and writes it to w.
func WriteJSON(d *Diagram, w io.Writer) error {
	out := document{
		Name:    d.Name(),
		Comment: d.Comment(),
		Options: d.Options(),
		Nodes:   d.Nodes(),
		Edges:   d.Edges(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the diagram to a JSON file at path.
func ExportJSON(d *Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(d, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
