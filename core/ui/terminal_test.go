// Package ui - terminal rendering tests
package ui

import (
	"bytes"
	"strings"
	"testing"
)

// TestGridLiteralPercentHeaders renders a grid whose header cells contain
// percent signs, as the costing table's own columns do, and checks the
// characters survive to the output verbatim.
func TestGridLiteralPercentHeaders(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Grid([][]string{
		{"Item", "Waste %", "Margin %"},
		{"Bagel", "5.00", "50.00"},
	})

	out := buf.String()
	for _, want := range []string{"Waste %", "Margin %", "Bagel"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "%!") || strings.Contains(out, "(MISSING)") {
		t.Errorf("header cells mangled by formatting:\n%s", out)
	}
}

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	tbl := w.NewTable("Ingredient", "Price")
	tbl.AddRow("flour", "32.00")
	tbl.AddRow("sesame seeds", "160.00")
	tbl.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	// Every row is padded to the widest cell, so the separators line up.
	col := strings.Index(lines[0], "│")
	for _, line := range lines[2:] {
		if strings.Index(line, "│") != col {
			t.Errorf("separator misaligned in %q", line)
		}
	}
}
