package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/prio/internal/persist"
	"github.com/faizmokh/prio/internal/priority"
)

func newListCommand(sess *session) *cobra.Command {
	var (
		tagFlag  string
		jsonFlag bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the priority list sorted by date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := sess.store.Entries()
			if cmd.Flags().Changed("tag") {
				tag, err := priority.ParseTag(tagFlag)
				if err != nil {
					return err
				}
				entries = sess.store.Filter(tag)
			}

			out := cmd.OutOrStdout()
			if jsonFlag {
				payload, err := persist.Encode(entries)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, payload)
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries")
				return nil
			}
			printEntries(cmd, sess.table(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&tagFlag, "tag", "", `Only show entries with this tag ("none" for untagged)`)
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print entries as JSON")

	return cmd
}

func newSearchCommand(sess *session) *cobra.Command {
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Find entries whose title contains a term.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := joinTitle(args)
			if term == "" {
				return fmt.Errorf("search term is required")
			}

			needle := term
			if !caseSensitive {
				needle = strings.ToLower(term)
			}

			var matches []priority.Entry
			for _, entry := range sess.store.Entries() {
				title := entry.Title
				if !caseSensitive {
					title = strings.ToLower(title)
				}
				if strings.Contains(title, needle) {
					matches = append(matches, entry)
				}
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No matches for %q\n", term)
				return nil
			}
			fmt.Fprintf(out, "Results for %q\n", term)
			printEntries(cmd, sess.table(), matches)
			return nil
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match letter case exactly")

	return cmd
}

func newOnCommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "on <MM/DD>",
		Short: "Show the entries due on a date.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDay(cmd, sess, args[0])
		},
	}
}

func newSnapshotCommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the rendering saved with the last change.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := sess.store.Snapshot()
			if snapshot == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No snapshot saved")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}
}

func printDay(cmd *cobra.Command, sess *session, date string) error {
	if err := priority.ValidateDate(date); err != nil {
		return fmt.Errorf("%w: %q", err, date)
	}

	var due []priority.Entry
	for _, entry := range sess.store.Entries() {
		if entry.Date == date {
			due = append(due, entry)
		}
	}

	out := cmd.OutOrStdout()
	if len(due) == 0 {
		fmt.Fprintf(out, "No entries for %s\n", date)
		return nil
	}
	fmt.Fprintln(out, date)
	printEntries(cmd, sess.table(), due)
	return nil
}
