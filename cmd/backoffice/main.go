package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/beanbrews-backoffice/pkg/config"
	"github.com/jhoicas/beanbrews-backoffice/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "backoffice",
		Short:         "Bean & Brews — administración de la cafetería en la terminal",
		Long:          "Cliente de administración de la cafetería: pedidos, stock y clientes\nsobre el backend REST, desde la terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// sin subcomando arranca la TUI
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	root.AddCommand(newTUICmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newServeCmd())
	return root
}

// bootstrap carga configuración y logger, compartidos por todos los
// subcomandos.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	return cfg, log, nil
}
