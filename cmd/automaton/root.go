package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/enetx/automaton"
	"github.com/enetx/automaton/internal/config"
	"github.com/enetx/automaton/internal/logging"
	"github.com/enetx/automaton/store"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "automaton",
		Short:         "Simulate deterministic and non-deterministic finite automata",
		Long:          `Runs, steps through, tests and stores finite automata described as YAML or JSON documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}
			if cmd.Flags().Changed("redis") {
				cfg.Redis.Addr, _ = cmd.Flags().GetString("redis")
			}
			if cmd.Flags().Changed("dir") {
				cfg.Store.Dir, _ = cmd.Flags().GetString("dir")
			}

			a.cfg = cfg
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))

			return nil
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("redis", "", "Redis address for the document store (empty uses --dir)")
	cmd.PersistentFlags().String("dir", "", "Directory of the file document store (default \".automaton/documents\")")

	cmd.AddCommand(
		newAcceptsCmd(a),
		newDebugCmd(a),
		newTestCmd(a),
		newDotCmd(a),
		newSaveCmd(a),
		newLoadCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newServeCmd(a),
	)

	return cmd
}

// readDocument loads a document file, picking the encoding from its extension.
func readDocument(path string) (*automaton.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := automaton.ParseDocument(data, automaton.EncodingOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}

// buildFile reads a document file and builds its automaton.
func buildFile(path string) (automaton.Automaton, *automaton.Document, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, nil, err
	}

	a, err := doc.Build()
	if err != nil {
		return nil, nil, err
	}

	return a, doc, nil
}

// openStore returns the Redis store when an address is configured and the
// file store otherwise.
func (a *app) openStore() store.Store {
	if a.cfg.Redis.Addr == "" {
		a.logger.Debug("using file document store", "dir", a.cfg.Store.Dir)
		return store.NewFile(a.cfg.Store.Dir)
	}

	a.logger.Debug("using redis document store", "addr", a.cfg.Redis.Addr)

	return store.NewRedis(
		a.cfg.Redis.Addr,
		a.cfg.Redis.Password,
		a.cfg.Redis.DB,
		store.WithPrefix(a.cfg.Redis.Prefix),
		store.WithTTL(a.cfg.Redis.TTL),
	)
}
