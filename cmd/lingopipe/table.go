package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderKeyValues lays out label/value pairs as a two-column table. The CLI
// only renders diagnostics this way, so there is no general column model.
func renderKeyValues(title string, rows [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{title, "Value"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}
