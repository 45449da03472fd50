package proguard

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a JSON-encoded mapping table, typically one produced by
// EncodeJSON in an earlier run. Method entries that were collapsed to a
// single object are re-expanded transparently.
func Decode(r io.Reader) (*MappingTable, error) {
	table := NewMappingTable()
	if err := json.NewDecoder(r).Decode(table); err != nil {
		return nil, fmt.Errorf("decoding mapping table: %w", err)
	}
	return table, nil
}

// Method returns the first method mapped under the given original name.
// For overloaded names this is the overload that appeared first in the
// mapping file.
func (r *ClassRecord) Method(name string) (MethodRecord, error) {
	set, ok := r.Methods[name]
	if !ok || len(set.Records) == 0 {
		return MethodRecord{}, fmt.Errorf("method %s not found in class %s", name, r.Name)
	}
	return set.Records[0], nil
}

// Overloads returns every method mapped under the given original name, in
// first-appearance order.
func (r *ClassRecord) Overloads(name string) ([]MethodRecord, error) {
	set, ok := r.Methods[name]
	if !ok {
		return nil, fmt.Errorf("method %s not found in class %s", name, r.Name)
	}
	return set.Records, nil
}

// MethodBySignature returns the method with the given original name whose
// descriptor matches exactly. Used by consumers to pick one overload.
func (r *ClassRecord) MethodBySignature(name, signature string) (MethodRecord, error) {
	records, err := r.Overloads(name)
	if err != nil {
		return MethodRecord{}, err
	}
	for _, rec := range records {
		if rec.Signature == signature {
			return rec, nil
		}
	}
	return MethodRecord{}, fmt.Errorf("method %s with signature %s not found in class %s", name, signature, r.Name)
}

// Field returns the field mapped under the given original name.
func (r *ClassRecord) Field(name string) (FieldRecord, error) {
	rec, ok := r.Fields[name]
	if !ok {
		return FieldRecord{}, fmt.Errorf("field %s not found in class %s", name, r.Name)
	}
	return *rec, nil
}
