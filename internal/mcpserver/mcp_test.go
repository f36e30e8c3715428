package mcpserver

import (
	"strings"
	"testing"

	"github.com/analyticsops/ga4ctl/internal/config"
	"github.com/analyticsops/ga4ctl/internal/report"
)

// TestServerCreation verifies the MCP server can be created without panicking.
func TestServerCreation(t *testing.T) {
	server := NewServer("1.0.0-test", config.DefaultConfig())
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
	if server.server == nil {
		t.Fatal("NewServer().server is nil")
	}
	if server.svc == nil {
		t.Fatal("NewServer().svc is nil")
	}
}

// TestServerCreationEmptyVersion verifies empty version defaults to "dev".
func TestServerCreationEmptyVersion(t *testing.T) {
	server := NewServer("", config.DefaultConfig())
	if server == nil {
		t.Fatal("NewServer(\"\") returned nil")
	}
}

// TestToolDescriptions verifies all description functions return guidance text.
func TestToolDescriptions(t *testing.T) {
	descriptions := map[string]func() string{
		"properties": describeProperties,
		"overview":   describeOverview,
		"pages":      describePages,
		"sources":    describeSources,
		"countries":  describeCountries,
		"devices":    describeDevices,
		"daily":      describeDaily,
		"realtime":   describeRealtime,
		"custom":     describeCustom,
	}

	for name, fn := range descriptions {
		t.Run(name, func(t *testing.T) {
			desc := fn()
			if desc == "" {
				t.Errorf("%s description is empty", name)
			}
			if !strings.Contains(desc, "USE WHEN:") {
				t.Errorf("%s description missing USE WHEN section", name)
			}
			if !strings.Contains(desc, "RETURNS:") {
				t.Errorf("%s description missing RETURNS section", name)
			}
		})
	}
}

// TestToolResult verifies table conversion and text payload.
func TestToolResult(t *testing.T) {
	table := &report.Table{
		Columns:  []string{"country", "sessions"},
		Rows:     [][]any{{"Japan", int64(42)}},
		RowCount: 1,
	}

	result, structured, err := toolResult(table)
	if err != nil {
		t.Fatalf("toolResult() error: %v", err)
	}
	if result.IsError {
		t.Error("IsError set on success")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Content))
	}

	tr, ok := structured.(TableResult)
	if !ok {
		t.Fatalf("structured result is %T, want TableResult", structured)
	}
	if len(tr.Rows) != 1 || tr.Rows[0]["country"] != "Japan" {
		t.Errorf("unexpected rows: %v", tr.Rows)
	}
	if tr.Rows[0]["sessions"] != int64(42) {
		t.Errorf("sessions = %T %v, want int64 42", tr.Rows[0]["sessions"], tr.Rows[0]["sessions"])
	}
}

// TestToolResultEmptyTable verifies zero-row tables produce a valid result.
func TestToolResultEmptyTable(t *testing.T) {
	table := &report.Table{Columns: []string{"country", "sessions"}}

	result, structured, err := toolResult(table)
	if err != nil {
		t.Fatalf("toolResult() error: %v", err)
	}
	if result.IsError {
		t.Error("IsError set on empty table")
	}

	tr := structured.(TableResult)
	if tr.Rows == nil {
		t.Error("Rows must be an empty slice, not nil")
	}
	if len(tr.Columns) != 2 {
		t.Errorf("columns lost: %v", tr.Columns)
	}
}

// TestToolError verifies error results carry the message and the flag.
func TestToolError(t *testing.T) {
	result, structured, err := toolError(report.ErrUnknownReport)
	if err != nil {
		t.Fatalf("toolError() returned protocol error: %v", err)
	}
	if !result.IsError {
		t.Error("IsError not set")
	}
	if structured != nil {
		t.Error("structured content must be nil on error")
	}
}

func TestDefaultLimit(t *testing.T) {
	tests := []struct {
		limit    int64
		fallback int64
		want     int64
	}{
		{0, 20, 20},
		{-5, 20, 20},
		{7, 20, 7},
	}
	for _, tt := range tests {
		if got := defaultLimit(tt.limit, tt.fallback); got != tt.want {
			t.Errorf("defaultLimit(%d, %d) = %d, want %d", tt.limit, tt.fallback, got, tt.want)
		}
	}
}
