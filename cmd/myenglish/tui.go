package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-suite/internal/app"
	"github.com/heartmarshall/myenglish-suite/internal/config"
	"github.com/heartmarshall/myenglish-suite/internal/tui"
	"github.com/heartmarshall/myenglish-suite/internal/workspace"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			// Log output would tear the alternate screen.
			logger := app.NewLoggerTo(io.Discard, cfg.Log)

			ctx := cmd.Context()
			cat, err := app.OpenCatalog(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer cat.Close()

			ws := workspace.New(logger, cat.Service, workspace.Config{
				Listening: app.ListeningOptions(cfg),
				Delay:     cfg.Panel.Delay,
			}, uuid.New())
			defer ws.Close()

			program := tea.NewProgram(tui.NewModel(ctx, ws), tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			return nil
		},
	}
}
