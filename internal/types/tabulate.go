package types

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Tabulate renders a tabular result as column-aligned text for terminal
// display. A non-tabular result renders as its raw body.
func (r *Result) Tabulate() string {
	return r.render(r.Headers)
}

// TabulateWithTypes renders the result like Tabulate but annotates each
// header with the cell type observed in the first row, e.g. "id (Int)".
func (r *Result) TabulateWithTypes() string {
	return r.render(r.TypedHeaders())
}

func (r *Result) render(headers []string) string {
	if !r.IsTabular() {
		return string(r.Raw)
	}
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell.String()
		}
		table.Append(cells)
	}
	table.Render()
	return b.String()
}
