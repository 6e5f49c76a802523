package table_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/deckmail/pkg/table"
)

func TestRow_UnmarshalJSON_PreservesOrder(t *testing.T) {
	t.Parallel()

	var rows []table.Row
	err := json.Unmarshal([]byte(`[{"YTD":"+45%","Market":"CEE","Q4":1.5},{"Market":"RCA"}]`), &rows)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"YTD", "Market", "Q4"}, rows[0].Keys())
	assert.Equal(t, []string{"YTD", "Market", "Q4"}, table.Columns(rows))
	assert.Equal(t, "1.5", rows[0].Text("Q4"))
	assert.Equal(t, "", rows[1].Text("YTD"))
	assert.Equal(t, "RCA", rows[1].Text("Market"))
}

func TestRow_UnmarshalJSON_Errors(t *testing.T) {
	t.Parallel()

	t.Run("array is rejected", func(t *testing.T) {
		t.Parallel()
		var r table.Row
		err := json.Unmarshal([]byte(`["a","b"]`), &r)
		require.Error(t, err)
		assert.ErrorIs(t, err, table.ErrInvalidRow)
	})

	t.Run("null is an empty row", func(t *testing.T) {
		t.Parallel()
		var r table.Row
		require.NoError(t, json.Unmarshal([]byte(`null`), &r))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()
		var r table.Row
		require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.Keys())
	})
}

func TestRow_MarshalJSON(t *testing.T) {
	t.Parallel()

	r := table.NewRow("name", "John", "age", 25)
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"John","age":25}`, string(b))
	assert.Less(t, strings.Index(string(b), `"name"`), strings.Index(string(b), `"age"`))

	var zero table.Row
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestRow_UnmarshalYAML_PreservesOrder(t *testing.T) {
	t.Parallel()

	src := `
- Market: CEE
  YTD: "+45.2%"
  Q4: -12
- Market: RCA
`
	var rows []table.Row
	require.NoError(t, yaml.Unmarshal([]byte(src), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Market", "YTD", "Q4"}, rows[0].Keys())
	assert.Equal(t, "-12", rows[0].Text("Q4"))
	assert.Equal(t, "+45.2%", rows[0].Text("YTD"))

	var bad table.Row
	err := yaml.Unmarshal([]byte(`[1, 2]`), &bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrInvalidRow)
}

func TestZip(t *testing.T) {
	t.Parallel()

	r := table.Zip([]string{"name", "age", "city"}, []any{"Emma", 30})
	assert.Equal(t, []string{"name", "age"}, r.Keys())
	assert.Equal(t, "30", r.Text("age"))

	r = table.Zip([]string{"name"}, []any{"Emma", 30})
	assert.Equal(t, []string{"name"}, r.Keys())
}

func TestRow_SetKeepsPosition(t *testing.T) {
	t.Parallel()

	var r table.Row
	r.Set("a", 1)
	r.Set("b", 2)
	r.Set("a", 3)
	assert.Equal(t, []string{"a", "b"}, r.Keys())
	v, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestNewRow_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { table.NewRow("a") })
	assert.Panics(t, func() { table.NewRow(1, "a") })
}
