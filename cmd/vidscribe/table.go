package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const maxCellWidth = 80

// grid is a rounded terminal table. Headers keep the case they were given.
type grid struct {
	tw      table.Writer
	columns int
	right   map[int]bool
}

func newGrid(headers ...string) *grid {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	tw.AppendHeader(row)
	return &grid{tw: tw, columns: len(headers), right: map[int]bool{}}
}

// alignRight right-aligns the given zero-based columns, used for counts and durations.
func (g *grid) alignRight(cols ...int) *grid {
	for _, c := range cols {
		g.right[c] = true
	}
	return g
}

// add appends a row, padding short rows with empty cells.
func (g *grid) add(cells ...any) *grid {
	row := make(table.Row, g.columns)
	for i := range row {
		row[i] = ""
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	g.tw.AppendRow(row)
	return g
}

func (g *grid) String() string {
	if g.columns == 0 {
		return ""
	}
	configs := make([]table.ColumnConfig, g.columns)
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft, WidthMax: maxCellWidth}
		if g.right[i] {
			configs[i].Align = text.AlignRight
		}
	}
	g.tw.SetColumnConfigs(configs)
	return g.tw.Render()
}
