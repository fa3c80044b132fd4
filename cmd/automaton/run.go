package main

import (
	"fmt"

	"github.com/enetx/automaton"
	"github.com/enetx/g"
	"github.com/spf13/cobra"
)

func newAcceptsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accepts FILE INPUT...",
		Short: "Run inputs through an automaton",
		Long:  `Runs every INPUT through the automaton in FILE and prints Accept or Reject for each. Fails if any input is rejected.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := buildFile(args[0])
			if err != nil {
				return err
			}

			rejected := 0
			for _, input := range args[1:] {
				status := automaton.Reject
				if m.Accepts(g.String(input)) {
					status = automaton.Accept
				} else {
					rejected++
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", input, status)
			}

			if rejected > 0 {
				return fmt.Errorf("%d of %d inputs rejected", rejected, len(args)-1)
			}

			return nil
		},
	}
}

func newDebugCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "debug FILE INPUT",
		Short: "Step through a run and print every intermediate status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := buildFile(args[0])
			if err != nil {
				return err
			}

			for _, frame := range automaton.Trace(m, g.String(args[1])) {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", frame.Step, frame.Line)
			}

			return nil
		},
	}
}

func newTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test FILE",
		Short: "Run the bulk tests stored in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, doc, err := buildFile(args[0])
			if err != nil {
				return err
			}

			report := automaton.BulkTest(m, doc.Tests)
			for _, c := range report.Cases {
				result := "Pass"
				if !c.Pass {
					result = "Fail"
				}

				input := string(c.Input)
				if input == "" {
					input = "[Empty String]"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -- %s\n", c.Expect, input, result)
			}

			a.logger.Info("bulk test finished", "passed", report.Passed(), "total", len(report.Cases))

			if !report.OK() {
				return fmt.Errorf("%d of %d cases failed", len(report.Failed()), len(report.Cases))
			}

			return nil
		},
	}
}

func newDotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dot FILE",
		Short: "Export the automaton as a Graphviz DOT graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := buildFile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), m.ToDOT())
			return nil
		},
	}
}
