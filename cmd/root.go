package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paneline/paneline/internal/config"
	"github.com/paneline/paneline/internal/git"
	"github.com/paneline/paneline/internal/logger"
	"github.com/paneline/paneline/internal/segment"
	"github.com/paneline/paneline/internal/tmux"
)

var (
	flagDir   string
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "paneline [pane-id]",
	Short: "Render a git status segment for the tmux status line",
	Long: `Paneline resolves a tmux pane's working directory, queries git for the
repository state and prints one tmux-formatted status segment: branch,
clean/dirty glyph, stash count and per-bucket file counts.

On any failure (no pane directory, not a repository, git unavailable) it
prints nothing and exits zero so the status bar simply shows no segment.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		setupLogging(cfg)
		defer logger.CloseFileWriter()

		dir, ok := resolveDir(args)
		if !ok {
			return
		}

		state, ok := git.NewProbe().Snapshot(dir)
		if !ok {
			return
		}

		frags := segment.Render(state, cfg.RenderOptions())
		line := segment.FormatTmux(frags, cfg.Palette(), cfg.Render.Separator)
		if line != "" {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "probe this directory instead of a pane's")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log debug output to stderr")
}

// loadConfig falls back to defaults when the config file is unreadable; a
// status segment must render with whatever it has.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "paneline: config ignored: %v\n", err)
		return config.Defaults()
	}
	return cfg
}

func setupLogging(cfg *config.Config) {
	if cfg.Logging.FileEnabled {
		err := logger.InitWithFile(flagDebug, cfg.Logging.Dir, &logger.FileConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			MaxBackups: cfg.Logging.MaxBackups,
		})
		if err == nil {
			return
		}
		fmt.Fprintf(os.Stderr, "paneline: file logging disabled: %v\n", err)
	}
	logger.Init(flagDebug)
}

// resolveDir picks the directory to probe: the --dir flag, then the pane-id
// argument via tmux, then the current directory.
func resolveDir(args []string) (string, bool) {
	if flagDir != "" {
		return flagDir, true
	}
	if len(args) == 1 {
		return tmux.PaneWorkingDir(args[0])
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return dir, true
}
