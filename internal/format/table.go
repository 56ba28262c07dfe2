// Package format renders tabular output for the discovery artifacts:
// GitHub-flavoured Markdown for the emitted index document and
// fixed-width ASCII for terminal summaries.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the rendering style.
type Mode int

const (
	ASCII Mode = iota
	Markdown
)

// Table is a thin project-owned wrapper over go-pretty.
type Table struct {
	writer table.Writer
	mode   Mode
}

// NewTable returns a table that renders in the given mode.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends one data row.
func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendRow(row)
}

// LeftAlign left-aligns the given 1-based columns.
func (t *Table) LeftAlign(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignLeft}
	}
	t.writer.SetColumnConfigs(cfgs)
}

// String renders the table in the configured mode.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}
