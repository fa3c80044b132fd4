package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enetx/automaton/internal/server"
	"github.com/enetx/automaton/store"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves stored automata over HTTP: runs, bulk tests, DOT export and step-by-step debugging sessions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
			}

			var st store.Store
			if memory, _ := cmd.Flags().GetBool("memory"); memory {
				a.logger.Info("using in-memory document store, documents are lost on exit")
				st = store.NewMemory()
			} else {
				st = a.openStore()
			}

			api := server.New(st, a.logger, server.WithRunTTL(a.cfg.Server.RunTTL))

			srv := &http.Server{
				Addr:              a.cfg.Server.Addr,
				Handler:           api.Handler(a.cfg.Server.MetricsPath),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)

			go func() {
				a.logger.Info("server starting", "addr", srv.Addr, "metrics", a.cfg.Server.MetricsPath)
				serverErrors <- srv.ListenAndServe()
			}()

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err

			case sig := <-shutdown:
				a.logger.Info("shutdown started", "signal", sig.String())

				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					a.logger.Error("graceful shutdown did not complete", "error", err)
					return srv.Close()
				}

				a.logger.Info("server stopped")
				return nil
			}
		},
	}

	cmd.Flags().StringP("addr", "a", "", "Address to listen on (overrides config)")
	cmd.Flags().Bool("memory", false, "Keep documents in memory instead of the configured store")

	return cmd
}
