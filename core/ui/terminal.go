// Package ui - terminal output
// Plain-text tables and metric summaries for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted output
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println(w.color(Green, "✓ ") + fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println(w.color(Yellow, "⚠ ") + fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println(w.color(Red, "✗ ") + fmt.Sprintf(format, args...))
}

// Metric prints a labeled value line
func (w *Writer) Metric(label, value string) {
	w.Println("  %s %s", w.color(Dim, fmt.Sprintf("%-22s", label)), w.color(Bold, value))
}

// Table renders an aligned table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row, padded or truncated to the header count
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	format := ""
	for i, w := range t.widths {
		if i > 0 {
			format += " │ "
		}
		format += fmt.Sprintf("%%-%ds", w)
	}
	format += "\n"

	headerArgs := make([]interface{}, len(t.headers))
	for i, h := range t.headers {
		headerArgs[i] = h
	}
	t.w.Print("%s", t.w.color(Bold, fmt.Sprintf(format, headerArgs...)))

	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println(sep)

	for _, row := range t.rows {
		args := make([]interface{}, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		t.w.Print(format, args...)
	}
}

// Grid renders a raw grid, first row as the header
func (w *Writer) Grid(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	t := w.NewTable(rows[0]...)
	for _, row := range rows[1:] {
		t.AddRow(row...)
	}
	t.Render()
}
