package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stylecs/internal/manifest"
	"stylecs/internal/ui"
)

var browseNoTUI bool

func init() {
	browseCmd.Flags().BoolVar(&browseNoTUI, "no-tui", false, "print the theme instead of opening the browser")
}

var browseCmd = &cobra.Command{
	Use:   "browse <theme.toml>",
	Short: "Browse a theme's rules interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		if browseNoTUI || !isTerminal(os.Stdout) {
			return renderTheme(cmd.OutOrStdout(), theme, useColor(cmd))
		}

		model := ui.NewBrowseModel(theme)
		program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("browse: %w", err)
		}
		return nil
	},
}
