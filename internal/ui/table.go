package ui

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders rows of data in aligned columns.
type Table struct {
	w table.Writer
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	w := table.NewWriter()
	w.SetOutputMirror(out)

	hdr := make(table.Row, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	w.AppendHeader(hdr)

	style := table.StyleLight
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = false
	w.SetStyle(style)

	return &Table{w: w}
}

// Row appends a row of values. The number of values should match the number of headers.
func (t *Table) Row(values ...any) {
	row := make(table.Row, len(values))
	copy(row, values)
	t.w.AppendRow(row)
}

// Flush renders the buffered rows.
func (t *Table) Flush() error {
	t.w.Render()
	return nil
}
