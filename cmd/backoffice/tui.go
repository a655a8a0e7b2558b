package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jhoicas/beanbrews-backoffice/internal/infrastructure/rest"
	"github.com/jhoicas/beanbrews-backoffice/internal/interfaces/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Abre el back-office interactivo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
}

func runTUI() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	// la TUI es dueña de la terminal; el log va a archivo
	defer log.Close()

	client := rest.New(cfg.API.BaseURL, cfg.API.Timeout(), log)
	app := tui.NewApp(client, cfg.UI.PageSize, log)

	log.Info().Str("base_url", cfg.API.BaseURL).Msg("iniciando back-office")
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
