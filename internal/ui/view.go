package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/prio/internal/priority"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Width(10)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

var tagColors = map[priority.Tag]lipgloss.Color{
	priority.Red:    lipgloss.Color("9"),
	priority.Orange: lipgloss.Color("208"),
	priority.Yellow: lipgloss.Color("11"),
	priority.Green:  lipgloss.Color("10"),
	priority.Blue:   lipgloss.Color("12"),
	priority.Purple: lipgloss.Color("13"),
}

func newTable() table.Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 36},
			{Title: "Date", Width: 6},
			{Title: "Est. Time", Width: 10},
			{Title: "Tag", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithStyles(styles),
	)
}

func tagStyle(tag priority.Tag) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := tagColors[tag.Normalize()]; ok {
		return style.Foreground(c).Bold(true)
	}
	return style.Faint(true)
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := "Priorities"
	if m.filtering {
		header = fmt.Sprintf("Priorities (%s)", m.filter)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString("(no entries)\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("New entry, tagged %s (Enter next/save, Tab move, Esc cancel):", tagStyle(m.newTag).Render(string(m.newTag))))
		b.WriteByte('\n')
		labels := [fieldCount]string{"Title", "Date", "Est. time"}
		errs := [fieldCount]error{m.fieldErrs.Title, m.fieldErrs.Date, m.fieldErrs.Duration}
		for i := range m.inputs {
			cursor := "  "
			if i == m.focus {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(labelStyle.Render(labels[i]))
			b.WriteString(m.inputs[i].View())
			if errs[i] != nil {
				b.WriteString("  ")
				b.WriteString(errorStyle.Render(errs[i].Error()))
			}
			b.WriteByte('\n')
		}
	case modeConfirmDelete:
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("Delete every entry titled %q? (y/n, Esc to cancel)", m.pending)))
		b.WriteByte('\n')
	case modeConfirmClear:
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("Clear all %d entries? (y/n, Esc to cancel)", m.store.Len())))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("New tag: %s  Navigation: j/k select  f filter  n next new tag", m.newTag)))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("Actions: a add  d delete  t cycle tag  C clear  q quit"))
	b.WriteByte('\n')

	return b.String()
}
