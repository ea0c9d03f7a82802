package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/prio/internal/config"
	"github.com/faizmokh/prio/internal/logging"
	"github.com/faizmokh/prio/internal/ui"
)

// skipStore marks commands that run without opening the priority list.
const skipStore = "prio/skip-store"

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context) *cobra.Command {
	return newRootCommand(ctx, &session{})
}

func newRootCommand(ctx context.Context, sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prio",
		Short: "Keep a date-sorted priority list from your terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStore(cmd) || sess.ready() {
				return nil
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.LogLevel})
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}
			return sess.open(ctx, cfg, logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctx, sess)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("home", "", "Data directory (default: $PRIO_HOME or ~/.prio)")
	flags.String("backend", "", "Storage backend: diskv|bolt|sqlite|memory")
	flags.String("log-level", "", "Log level: debug|info|warn|error")
	flags.Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(
		newAddCommand(ctx, sess),
		newDeleteCommand(ctx, sess),
		newClearCommand(ctx, sess),
		newTagCommand(ctx, sess),
		newListCommand(sess),
		newSearchCommand(sess),
		newOnCommand(sess),
		newTodayCommand(sess),
		newSnapshotCommand(sess),
		newUICommand(ctx, sess),
		newVersionCommand(),
	)

	return cmd
}

func newUICommand(ctx context.Context, sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive priority list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctx, sess)
		},
	}
}

func runTUI(ctx context.Context, sess *session) error {
	m := ui.NewModel(ctx, sess.store)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func needsStore(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipStore]; ok {
			return false
		}
	}
	return true
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	sess := &session{}
	defer sess.close()
	return newRootCommand(ctx, sess).ExecuteContext(ctx)
}

// Main is a helper used by cmd/prio/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
