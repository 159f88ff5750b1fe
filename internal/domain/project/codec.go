package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

var (
	loadRequiredFields   = []string{"title", "authorInfo"}
	importRequiredFields = []string{"title", "outline", "chapters", "authorInfo"}
)

// Decode parses a serialized document, checks that every required top-level
// key is present and non-null, and backfills optional fields.
func Decode(raw string, required ...string) (*Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	var missing []string
	for _, key := range required {
		value, ok := fields[key]
		if !ok || string(value) == "null" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidStructure, strings.Join(missing, ", "))
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Backfill(&doc), nil
}

// Encode serializes a document compactly for the persistence slot.
func Encode(doc *Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EncodeIndent serializes a document with two-space indentation. HTML in
// chapter bodies is written verbatim.
func EncodeIndent(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
