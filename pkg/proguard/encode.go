package proguard

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes the table to w as JSON with 4-space indentation.
// Non-ASCII characters and angle brackets are written literally, so the
// output matches what downstream JNI consumers expect for names like
// "<init>".
func (t *MappingTable) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding mapping table: %w", err)
	}
	return nil
}

// EncodeYAML writes the table to w as YAML with 4-space indentation,
// preserving class order and the single-vs-list method shape.
func (t *MappingTable) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(4)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding mapping table: %w", err)
	}
	return enc.Close()
}
