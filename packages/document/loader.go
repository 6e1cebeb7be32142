package document

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrInvalidJSON is the sentinel error for malformed JSON input.
var ErrInvalidJSON = errors.New("invalid JSON document")

// FromJSON parses data into a document tree. Objects decode as
// map[string]any, arrays as []any, and numbers as float64.
func FromJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse document: %w", ErrInvalidJSON)
	}
	return gjson.ParseBytes(data).Value(), nil
}

// FromJSONString parses s into a document tree.
func FromJSONString(s string) (any, error) {
	if !gjson.Valid(s) {
		return nil, fmt.Errorf("parse document: %w", ErrInvalidJSON)
	}
	return gjson.Parse(s).Value(), nil
}

// FromYAML parses data into a document tree. Mappings decode as
// map[string]any and numbers keep their YAML type, so integers decode
// as int rather than float64.
func FromYAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML document: %w", err)
	}
	return doc, nil
}
