package table

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Columns returns the column schema of a dataset: the keys of the first row,
// in order. Later rows are not consulted.
func Columns(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}
	return rows[0].Keys()
}

// Schema returns the column schema or ErrEmptySchema when rows is non-empty
// but the first row has no keys. An empty dataset has an empty schema.
func Schema(rows []Row) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols := Columns(rows)
	if len(cols) == 0 {
		return nil, ErrEmptySchema
	}
	return cols, nil
}

// Mismatched reports the indexes of rows whose key set differs from the
// first row. Such rows still render; missing cells are empty and extra keys
// are ignored.
func Mismatched(rows []Row) []int {
	cols := Columns(rows)
	var out []int
	for i := 1; i < len(rows); i++ {
		if !sameKeys(cols, rows[i]) {
			out = append(out, i)
		}
	}
	return out
}

func sameKeys(cols []string, r Row) bool {
	if r.Len() != len(cols) {
		return false
	}
	for _, c := range cols {
		if _, ok := r.Get(c); !ok {
			return false
		}
	}
	return true
}

// FormatValue renders a decoded cell value as display text.
// Nil renders as the empty string; floats use the shortest exact form.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}

// IsNegative reports whether display text should be styled as a negative
// value. This is a literal check for a leading '-' after trimming spaces and
// does not parse numbers: "-12.3%" and "-n/a" are negative, "N-A" is not.
func IsNegative(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "-")
}
