// Package proguard converts ProGuard-style obfuscation mappings into a
// structured table keyed by fully-qualified class names, with each method
// described by its JVM type descriptor.
package proguard

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ClassMap resolves original class names (in internal slash form, e.g.
// "net/minecraft/client/Minecraft") to their obfuscated short names.
// It is built during the first parse pass and read-only afterward.
type ClassMap map[string]string

// MethodRecord pairs a method's obfuscated name with its JVM descriptor,
// e.g. {Name: "a", Signature: "(ILjava/lang/String;)V"}.
type MethodRecord struct {
	Name      string `json:"name" yaml:"name"`
	Signature string `json:"signature" yaml:"signature"`
}

// FieldRecord holds a field's obfuscated name.
type FieldRecord struct {
	Name string `json:"name" yaml:"name"`
}

// MethodSet holds every method sharing one original name, in the order
// their declarations appear in the mapping file.
//
// It serializes as a single object when the name is not overloaded and as
// an array otherwise. Consumers rely on that shape to detect overloading,
// so it is preserved on both encode and decode.
type MethodSet struct {
	Records []MethodRecord
}

// MarshalJSON emits a bare record for a single method and an array for
// overloads. Output is never HTML-escaped: method names such as "<init>"
// must round-trip literally.
func (s *MethodSet) MarshalJSON() ([]byte, error) {
	if len(s.Records) == 1 {
		return marshalNoEscape(s.Records[0])
	}
	return marshalNoEscape(s.Records)
}

// UnmarshalJSON accepts either a single record or an array of records.
func (s *MethodSet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &s.Records)
	}
	var rec MethodRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	s.Records = []MethodRecord{rec}
	return nil
}

// MarshalYAML mirrors the JSON shape: single mapping or sequence.
func (s *MethodSet) MarshalYAML() (interface{}, error) {
	if len(s.Records) == 1 {
		return s.Records[0], nil
	}
	return s.Records, nil
}

// ClassRecord describes one mapped class: its obfuscated name plus the
// rename entries for its methods and fields, keyed by original member name.
type ClassRecord struct {
	Name    string                  `json:"name" yaml:"name"`
	Methods map[string]*MethodSet   `json:"methods" yaml:"methods"`
	Fields  map[string]*FieldRecord `json:"fields" yaml:"fields"`
}

// newClassRecord creates an empty record with initialized member maps so
// classes without members still serialize as {} rather than null.
func newClassRecord(obfuscated string) *ClassRecord {
	return &ClassRecord{
		Name:    obfuscated,
		Methods: make(map[string]*MethodSet),
		Fields:  make(map[string]*FieldRecord),
	}
}

// MappingTable is the final output of a conversion: every mapped class
// keyed by its original internal name, preserving the order in which the
// classes first appear in the mapping file.
type MappingTable struct {
	names   []string
	classes map[string]*ClassRecord
}

// NewMappingTable creates an empty table.
func NewMappingTable() *MappingTable {
	return &MappingTable{classes: make(map[string]*ClassRecord)}
}

// Put registers a class record under its original internal name. A
// duplicate declaration replaces the earlier record but keeps its original
// position in the output.
func (t *MappingTable) Put(name string, rec *ClassRecord) {
	if t.classes == nil {
		t.classes = make(map[string]*ClassRecord)
	}
	if _, exists := t.classes[name]; !exists {
		t.names = append(t.names, name)
	}
	t.classes[name] = rec
}

// Class returns the record for the given original internal name.
func (t *MappingTable) Class(name string) (*ClassRecord, bool) {
	rec, ok := t.classes[name]
	return rec, ok
}

// Len reports the number of mapped classes.
func (t *MappingTable) Len() int {
	return len(t.names)
}

// ClassNames returns the original internal names in first-appearance order.
func (t *MappingTable) ClassNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// MarshalJSON emits {"classes": {...}} with classes in first-appearance
// order and without HTML escaping.
func (t *MappingTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"classes":{`)
	for i, name := range t.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(t.classes[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the table from its serialized form, recovering
// class order from the order of keys in the "classes" object.
func (t *MappingTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in mapping table", keyTok)
		}
		if key != "classes" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
			continue
		}

		if err := expectDelim(dec, '{'); err != nil {
			return err
		}
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return err
			}
			name, ok := nameTok.(string)
			if !ok {
				return fmt.Errorf("unexpected class key %v", nameTok)
			}
			rec := &ClassRecord{}
			if err := dec.Decode(rec); err != nil {
				return fmt.Errorf("decoding class %s: %w", name, err)
			}
			t.Put(name, rec)
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	return nil
}

// MarshalYAML emits the same ordered shape as MarshalJSON.
func (t *MappingTable) MarshalYAML() (interface{}, error) {
	classes := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range t.names {
		var keyNode, valNode yaml.Node
		if err := keyNode.Encode(name); err != nil {
			return nil, err
		}
		if err := valNode.Encode(t.classes[name]); err != nil {
			return nil, err
		}
		classes.Content = append(classes.Content, &keyNode, &valNode)
	}

	var rootKey yaml.Node
	if err := rootKey.Encode("classes"); err != nil {
		return nil, err
	}
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, &rootKey, classes)
	return root, nil
}

// marshalNoEscape marshals v without HTML escaping, so "<init>" and friends
// are emitted literally instead of as "<init>".
func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// expectDelim consumes the next token and verifies it is the given delimiter.
func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || rune(delim) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
