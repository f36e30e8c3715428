package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRecords(t *testing.T) {
	table := &Table{
		Columns: []string{"page", "views"},
		Rows: [][]any{
			{"/a", int64(10)},
			{"/b", int64(3)},
		},
	}

	records := table.Records()
	assert.Len(t, records, 2)
	assert.Equal(t, map[string]any{"page": "/a", "views": int64(10)}, records[0])
	assert.Equal(t, map[string]any{"page": "/b", "views": int64(3)}, records[1])
}

func TestTableRecordsEmpty(t *testing.T) {
	table := &Table{Columns: []string{"page", "views"}}
	assert.Empty(t, table.Records())
}

func TestTableRecordsShortRow(t *testing.T) {
	table := &Table{
		Columns: []string{"a", "b"},
		Rows:    [][]any{{"only"}},
	}
	records := table.Records()
	assert.Equal(t, map[string]any{"a": "only"}, records[0])
}
