package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"attribute-browser/internal/loader"
	"attribute-browser/internal/navigation"
	"attribute-browser/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the attribute document in the terminal",
	Long: `Load the attribute document and browse it in a terminal UI. Typing
searches (after a short pause), tab cycles the effect filter, enter opens
the selected attribute and esc returns to the list.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, err := loader.New(cfg.FetchTimeout, logger).LoadCatalog(cmd.Context(), cfg.DataSource)
	if err != nil {
		logger.Error("Failed to load attribute document", zap.String("source", cfg.DataSource), zap.Error(err))
		return err
	}

	// Log output would draw over the alternate screen.
	model := tui.NewModel(navigation.NewController(c, zap.NewNop()))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
