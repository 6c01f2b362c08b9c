// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/notebook"
	"github.com/jotcli/jot/internal/ui"
	"github.com/jotcli/jot/internal/vcs"
)

var (
	// Global flags
	dirFlag    string
	configFlag string
	debugFlag  bool

	// Resolved values
	cfg         *config.Config
	resolvedDir string
	logger      *slog.Logger
)

// rootCmd represents the base command. With no subcommand it behaves as
// `jot edit`, the everyday action.
var rootCmd = &cobra.Command{
	Use:   "jot [filename]",
	Short: "Jot - plain-text notes under version control",
	Long: `Jot manages a directory of markdown notes, each carrying an embedded
metadata header (created/modified timestamps, title, tags), with history
recorded in git.

Running jot with just a filename (or --title) edits that note, creating it
first when it does not exist yet.

Examples:
  jot shopping-list            # Edit notes/shopping-list.md, creating it if new
  jot --title "Brain Dance"    # Create and edit brain-dance.md
  jot read shopping-list       # Print the note body
  jot read shopping-list --pretty
  jot rm shopping-list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(args)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger()

		// Commands that don't touch the notes directory skip resolution.
		switch cmd.Name() {
		case "slug", "help", "completion", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		if configFlag != "" {
			cfg, err = config.LoadFrom(configFlag)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		resolvedDir, err = cfg.ResolveDirectory(dirFlag)
		if err != nil {
			return err
		}
		if fi, err := os.Stat(resolvedDir); err != nil || !fi.IsDir() {
			return fmt.Errorf("notes directory not found: %s", resolvedDir)
		}

		return nil
	},
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Notes directory (overrides $JOT_DIR and config)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	addEditFlags(rootCmd)
}

func initLogger() {
	level := slog.LevelWarn
	if debugFlag {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newNotebook wires a Notebook for the resolved notes directory.
func newNotebook() *notebook.Notebook {
	return notebook.New(resolvedDir, cfg.ResolveEditor(), newGit(), logger)
}

// newGit wires the revision control adapter for the resolved directory.
func newGit() *vcs.Git {
	return vcs.New(resolvedDir, logger)
}
