package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/paneline/paneline/internal/logger"
	"github.com/paneline/paneline/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Live preview of the segment for a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		// No console logging: it would tear the TUI.
		logger.Init(false)

		dir := flagDir
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			dir = cwd
		}

		model := ui.NewWatchModel(dir, cfg.RenderOptions(), cfg.Render.Separator)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run watch view: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
