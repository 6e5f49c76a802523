package table

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Row is a single table record. Keys keep the order in which they were
// inserted or decoded, so the first row of a dataset defines column order.
// The zero value is an empty row ready to use.
type Row struct {
	values *orderedmap.OrderedMap[string, any]
}

// NewRow creates a row from alternating key/value pairs.
// It panics if pairs has an odd length or a key is not a string.
func NewRow(pairs ...any) Row {
	if len(pairs)%2 != 0 {
		panic("table.NewRow: odd number of arguments")
	}
	var r Row
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("table.NewRow: key at position %d is %T, not string", i, pairs[i]))
		}
		r.Set(key, pairs[i+1])
	}
	return r
}

// Zip pairs header names with values position by position.
// Extra names or extra values are dropped.
func Zip(header []string, values []any) Row {
	var r Row
	for i := 0; i < len(header) && i < len(values); i++ {
		r.Set(header[i], values[i])
	}
	return r
}

// Set stores a value, keeping the original position of an existing key.
func (r *Row) Set(key string, value any) {
	if r.values == nil {
		r.values = orderedmap.New[string, any]()
	}
	r.values.Set(key, value)
}

// Get returns the raw value stored under key.
func (r Row) Get(key string) (any, bool) {
	if r.values == nil {
		return nil, false
	}
	return r.values.Get(key)
}

// Text returns the display text of the value under key, or "" when the key is
// missing.
func (r Row) Text(key string) string {
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	return FormatValue(v)
}

// Len returns the number of keys in the row.
func (r Row) Len() int {
	if r.values == nil {
		return 0
	}
	return r.values.Len()
}

// Keys returns the keys in insertion order.
func (r Row) Keys() []string {
	if r.values == nil {
		return nil
	}
	keys := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON encodes the row as a JSON object with keys in order.
func (r Row) MarshalJSON() ([]byte, error) {
	if r.values == nil {
		return []byte("{}"), nil
	}
	return r.values.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	values := orderedmap.New[string, any]()
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		r.values = values
		return nil
	case len(trimmed) == 0 || trimmed[0] != '{':
		return fmt.Errorf("%w: row must be a JSON object", ErrInvalidRow)
	}
	if err := values.UnmarshalJSON(trimmed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRow, err)
	}
	r.values = values
	return nil
}

// UnmarshalYAML decodes a YAML mapping, preserving key order.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	values := orderedmap.New[string, any]()
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		r.values = values
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: row must be a mapping (line %d)", ErrInvalidRow, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRow, err)
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRow, err)
		}
		values.Set(key, value)
	}
	r.values = values
	return nil
}

var (
	_ json.Marshaler   = Row{}
	_ json.Unmarshaler = (*Row)(nil)
	_ yaml.Unmarshaler = (*Row)(nil)
)
