package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/beanbrews-backoffice/internal/devserver"
)

func newServeCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
		seed   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor de desarrollo local (SQLite)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Close()

			if addr == "" {
				addr = cfg.Dev.Addr
			}
			if dbPath == "" {
				dbPath = cfg.Dev.DBPath
			}

			srv, err := devserver.New(dbPath, log)
			if err != nil {
				return err
			}
			if seed {
				if err := srv.Seed(); err != nil {
					return err
				}
			}

			// Apagado ordenado con Ctrl+C
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-quit
				log.Info().Msg("apagando servidor de desarrollo")
				_ = srv.Shutdown()
			}()

			return srv.Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "dirección de escucha (default DEV_ADDR)")
	cmd.Flags().StringVar(&dbPath, "db", "", "ruta de la base SQLite (default DEV_DB_PATH)")
	cmd.Flags().BoolVar(&seed, "seed", false, "carga datos de muestra si la base está vacía")
	return cmd
}
