package cli

import (
	"time"

	"github.com/spf13/cobra"
)

var now = time.Now

func newTodayCommand(sess *session) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the entries due today or on a specific date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := dateFlag
			if date == "" {
				date = now().In(time.Local).Format("01/02")
			}
			return printDay(cmd, sess, date)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in MM/DD (default: today)")

	return cmd
}
