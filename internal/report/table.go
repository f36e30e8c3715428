package report

// Table is the uniform row/column shape every report resolves to before
// formatting. Cell values are primitives: string, int64, or float64.
// The column set is identical across rows.
type Table struct {
	Columns []string
	Rows    [][]any

	// RowCount is the provider-reported total, which can exceed
	// len(Rows) when the query was limit-capped. Zero when unknown.
	RowCount int64
}

// Records converts the table to one map per row, keyed by column name.
// Used for JSON and structured MCP results.
func (t *Table) Records() []map[string]any {
	records := make([]map[string]any, len(t.Rows))
	for i, row := range t.Rows {
		m := make(map[string]any, len(t.Columns))
		for j, col := range t.Columns {
			if j < len(row) {
				m[col] = row[j]
			}
		}
		records[i] = m
	}
	return records
}
