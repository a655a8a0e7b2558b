package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/beanbrews-backoffice/internal/infrastructure/pdf"
	"github.com/jhoicas/beanbrews-backoffice/internal/infrastructure/rest"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Genera un reporte PDF de stock y pedidos",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Close()

			client := rest.New(cfg.API.BaseURL, cfg.API.Timeout(), log)
			stocks, err := client.ListStocks()
			if err != nil {
				return fmt.Errorf("export: listar stock: %w", err)
			}
			orders, err := client.ListOrders()
			if err != nil {
				return fmt.Errorf("export: listar pedidos: %w", err)
			}

			doc, err := pdf.NewReportGenerator().GenerateBackofficeReport(stocks, orders, time.Now())
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := os.WriteFile(out, doc, 0o644); err != nil {
				return fmt.Errorf("export: escribir %s: %w", out, err)
			}

			log.Info().Str("file", out).Int("bytes", len(doc)).Msg("reporte generado")
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "backoffice-report.pdf", "archivo de salida")
	return cmd
}
