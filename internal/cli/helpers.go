package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/prio/internal/priority"
	"github.com/faizmokh/prio/internal/render"
)

// joinTitle rebuilds a title split across arguments. Titles match exactly,
// so surrounding whitespace is kept.
func joinTitle(args []string) string {
	return strings.Join(args, " ")
}

func parseIndex(value string) (int, error) {
	index, err := strconv.Atoi(value)
	if err != nil || index <= 0 {
		return 0, fmt.Errorf("index must be a positive integer")
	}
	return index, nil
}

func formatEntry(entry priority.Entry) string {
	builder := strings.Builder{}
	builder.Grow(24 + len(entry.Title))

	builder.WriteString(entry.Title)
	builder.WriteString(" (")
	builder.WriteString(entry.Date)
	builder.WriteString(", ")
	builder.WriteString(entry.Duration)
	builder.WriteString(")")

	if entry.Tagged() {
		builder.WriteString(" [")
		builder.WriteString(string(entry.Tag))
		builder.WriteString("]")
	}

	return builder.String()
}

// fieldProblems lists the failing form fields by name, in form order.
func fieldProblems(errs priority.FieldErrors) ([]string, []error) {
	var (
		names  []string
		causes []error
	)
	for _, field := range []struct {
		name string
		err  error
	}{
		{"title", errs.Title},
		{"date", errs.Date},
		{"time", errs.Duration},
	} {
		if field.err == nil {
			continue
		}
		names = append(names, field.name)
		causes = append(causes, field.err)
	}
	return names, causes
}

func printEntries(cmd *cobra.Command, table render.Table, entries []priority.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, table.Render(entries))
	fmt.Fprintln(out, render.Summary(entries))
}
