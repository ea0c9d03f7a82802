package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/prio/internal/version"
)

func newVersionCommand() *cobra.Command {
	var (
		shortened bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print prio build information.",
		Example: `
prio version
prio version --short
`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), version.Info(shortened, output))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")

	return cmd
}
