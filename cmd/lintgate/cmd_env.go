package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newEnvCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Check the environment without running the analysis",
		Long: `env performs the setup steps of the gate (project root, environment
activation, tool integrity) and prints the resolved tool. It exits 1 when
any of them fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, cfg, cleanup, err := newGate(cmd.Context(), opts, stdout, stderr)
			defer cleanup()
			if err != nil {
				return err
			}

			prepared, err := orch.Prepare(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "project root: %s\n", prepared.ProjectRoot)
			if prepared.Environment.Dir != "" {
				fmt.Fprintf(stdout, "environment:  %s\n", prepared.Environment.Dir)
			}
			fmt.Fprintf(stdout, "tool:         %s\n", prepared.ToolPath)
			return nil
		},
	}
}
