// Package cli wires the command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/taskify/internal/config"
	"github.com/idilsaglam/taskify/internal/draft"
	"github.com/idilsaglam/taskify/internal/logging"
	"github.com/idilsaglam/taskify/internal/tasklist"
	"github.com/idilsaglam/taskify/internal/tui"
	"github.com/idilsaglam/taskify/internal/ui"
)

// rootFlags apply to every subcommand.
type rootFlags struct {
	configPath string
	theme      string
	logFile    string
}

// NewRootCmd builds the command tree. version is reported by `taskify version`.
func NewRootCmd(version string) *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "taskify",
		Short: "Taskify - a tiny task list for the terminal",
		Long: `Taskify keeps a task list for the length of a session.

Type a task and press enter to add it. Tasks can be edited in place,
marked complete and deleted. Nothing is written to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default: ~/.taskify/config.yaml, then ./.taskify/config.yaml)")
	root.PersistentFlags().StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	root.PersistentFlags().StringVar(&f.logFile, "log-file", "", "write debug logs to this file")

	root.AddCommand(newConfigCmd(f))
	root.AddCommand(newVersionCmd(version))
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	root := NewRootCmd(version)
	if err := root.ExecuteContext(context.Background()); err != nil {
		theme, _ := ui.Lookup("")
		theme.Fail(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// load resolves the effective config with flags applied last.
func (f *rootFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	return cfg, nil
}

func runTUI(ctx context.Context, f *rootFlags) error {
	cfg, err := f.load()
	if err != nil {
		return err
	}
	theme, err := ui.Lookup(cfg.Theme)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	ctx = logging.WithContext(ctx, logger)

	m := tui.New(
		tasklist.New(tasklist.WithLogger(logger)),
		draft.New(),
		tui.Options{
			Theme:       theme,
			Title:       cfg.Title,
			Placeholder: cfg.Placeholder,
			CharLimit:   cfg.CharLimit,
			Logger:      logger,
		},
	)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	logging.FromContext(ctx).Info("starting", "theme", theme.Name)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(tui.Model); ok {
		done, pending := fm.Tasks().Stats()
		logging.FromContext(ctx).Info("exiting", "done", done, "pending", pending)
	}
	return nil
}
