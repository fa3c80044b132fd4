package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/enetx/automaton"
	"github.com/spf13/cobra"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME FILE",
		Short: "Store a document under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[1])
			if err != nil {
				return err
			}

			if _, err := doc.Build(); err != nil {
				return err
			}

			if err := a.openStore().Save(cmd.Context(), args[0], doc); err != nil {
				return err
			}

			a.logger.Info("document saved", "name", args[0], "kind", doc.Kind)
			return nil
		},
	}
}

func newLoadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load NAME",
		Short: "Print a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.openStore().Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load %q: %w", args[0], err)
			}

			format, _ := cmd.Flags().GetString("output")
			data, err := doc.Encode(automaton.Encoding(format))
			if err != nil {
				return err
			}

			if out, _ := cmd.Flags().GetString("file"); out != "" {
				return os.WriteFile(filepath.Clean(out), data, 0o644)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringP("output", "o", string(automaton.EncodingYAML), "Output encoding (yaml or json)")
	cmd.Flags().StringP("file", "f", "", "Write to a file instead of stdout")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.openStore().List(cmd.Context())
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.openStore().Delete(cmd.Context(), args[0])
		},
	}
}
