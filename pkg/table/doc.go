// Package table holds the tabular dataset that feeds the data slide.
//
// A dataset is a slice of Row values. Each Row is an insertion-ordered
// mapping from column name to value, decoded from JSON objects or YAML
// mappings without losing key order. The first row is the authoritative
// schema: its keys, in order, become the table header. Later rows are read
// by key lookup, so a missing key renders as an empty cell and an unknown key
// is ignored.
//
//	var rows []table.Row
//	_ = json.Unmarshal([]byte(`[{"Market":"CEE","YTD":"+45%"}]`), &rows)
//	table.Columns(rows)       // []string{"Market", "YTD"}
//	rows[0].Text("YTD")       // "+45%"
//	table.IsNegative("-12%")  // true
package table
