package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/prio/internal/priority"
)

func newAddCommand(ctx context.Context, sess *session) *cobra.Command {
	var (
		dateFlag string
		timeFlag string
		tagFlag  string
	)

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add an entry to the priority list.",
		Long:  `add validates the title, the MM/DD date and the estimate ("45m", "2h", "1h 30m") before saving the entry.`,
		Example: `
prio add Write release notes --date 03/14 --time "1h 30m" --tag red
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := priority.ParseTag(tagFlag)
			if err != nil {
				return err
			}

			form := &priority.Form{
				Title:    joinTitle(args),
				Date:     dateFlag,
				Duration: timeFlag,
			}
			entry := form.Entry(tag)

			added, err := sess.store.Add(ctx, form, tag)
			if !added {
				names, causes := fieldProblems(form.Errors)
				for i, name := range names {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v\n", name, causes[i])
				}
				return fmt.Errorf("invalid %s", strings.Join(names, ", "))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatEntry(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in MM/DD")
	cmd.Flags().StringVar(&timeFlag, "time", "", `Estimated time, e.g. "45m", "2h" or "1h 30m"`)
	cmd.Flags().StringVar(&tagFlag, "tag", "", "Tag color: red|orange|yellow|green|blue|purple")

	return cmd
}

func newDeleteCommand(ctx context.Context, sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title...>",
		Short: "Remove every entry with the given title.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := joinTitle(args)
			removed, err := sess.store.DeleteByTitle(ctx, title)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch removed {
			case 0:
				fmt.Fprintf(out, "No entries titled %q\n", title)
			case 1:
				fmt.Fprintf(out, "Deleted 1 entry titled %q\n", title)
			default:
				fmt.Fprintf(out, "Deleted %d entries titled %q\n", removed, title)
			}
			return nil
		},
	}
}

func newClearCommand(ctx context.Context, sess *session) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry and wipe the saved state.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintf(out, "Clear all %d entries? [y/N] ", sess.store.Len())
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					fmt.Fprintln(out, "Aborted")
					return nil
				}
			}

			if err := sess.store.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Cleared all entries")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newTagCommand(ctx context.Context, sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <index> <color>",
		Short: "Set the tag color of an entry by its list position.",
		Long:  `tag colors the entry at the given 1-based position of the date-sorted list. Use "none" to remove the tag.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			tag, err := priority.ParseTag(args[1])
			if err != nil {
				return err
			}

			entry, err := sess.store.SetTag(ctx, index-1, tag)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tagged entry %d: %s\n", index, formatEntry(entry))
			return nil
		},
	}
}
