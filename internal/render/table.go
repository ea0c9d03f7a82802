// Package render turns entries into terminal tables.
package render

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/faizmokh/prio/internal/priority"
)

const maxTitleWidth = 48

// Table renders entries as a header row plus one row per entry. The zero
// value renders plain text, which is what gets stored as the snapshot.
type Table struct {
	// Color paints the tag column with the tag's color.
	Color bool
}

// Render implements list.Renderer.
func (t Table) Render(entries []priority.Entry) string {
	table := uitable.New()
	table.MaxColWidth = maxTitleWidth
	table.Wrap = true

	table.AddRow("#", "TITLE", "DATE", "EST. TIME", "TAG")
	for i, entry := range entries {
		table.AddRow(i+1, entry.Title, entry.Date, entry.Duration, t.tag(entry.Tag))
	}
	return table.String() + "\n"
}

func (t Table) tag(tag priority.Tag) string {
	tag = tag.Normalize()
	if !t.Color {
		return string(tag)
	}
	c := TagColor(tag)
	c.EnableColor()
	return c.Sprint(string(tag))
}

// TagColor maps a palette tag to a terminal color. Unknown tags are faint.
func TagColor(tag priority.Tag) *color.Color {
	switch tag.Normalize() {
	case priority.Red:
		return color.New(color.FgRed, color.Bold)
	case priority.Orange:
		return color.New(color.FgHiRed)
	case priority.Yellow:
		return color.New(color.FgYellow)
	case priority.Green:
		return color.New(color.FgGreen)
	case priority.Blue:
		return color.New(color.FgBlue)
	case priority.Purple:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.Faint)
	}
}

// Summary renders a one-line count and total estimate.
func Summary(entries []priority.Entry) string {
	total := priority.TotalEstimate(entries)
	noun := "entries"
	if len(entries) == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("%d %s, %s estimated", len(entries), noun, total)
}
