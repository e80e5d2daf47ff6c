package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ochairo/lintgate/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/lintgate/internal/domain-orchestrators"
	"github.com/ochairo/lintgate/internal/domain/entities"
	"github.com/ochairo/lintgate/internal/domain/interfaces/repositories"
	"github.com/ochairo/lintgate/internal/domain/services"
	"github.com/ochairo/lintgate/internal/external-adapters/yaml"
	"github.com/ochairo/lintgate/internal/external-adapters/zaplog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// run executes the CLI and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, entities.ErrCheckFailure) {
		// The tool's own output explains a check failure; anything else
		// gets one line of context.
		fmt.Fprintf(stderr, "lintgate: %v\n", err)
	}
	return exitCode(err)
}

// exitCode collapses every failure, setup or check, to 1
func exitCode(err error) int {
	if err == nil {
		return services.ExitPass
	}
	var gateErr *entities.GateError
	if errors.As(err, &gateErr) && errors.Is(gateErr, entities.ErrCheckFailure) {
		return services.MapStatus(gateErr.ExitCode)
	}
	return services.ExitFail
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lintgate",
		Short: "Run the project linter as a pass/fail gate",
		Long: `lintgate enters the project root, activates its virtual environment,
runs the analysis tool over the whole tree and exits 0 when the tool
exits 0, 1 otherwise. The tool's output is passed through unchanged.

Settings are read from lintgate.yml in the current directory when present.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGate(cmd.Context(), opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: ./lintgate.yml if present)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log setup steps and the tool's exit status to stderr")

	cmd.AddCommand(newEnvCmd(opts, stdout, stderr))
	return cmd
}

// newGate wires the orchestrator with production gateways
func newGate(ctx context.Context, opts *rootOptions, stdout, stderr io.Writer) (*orchestrators.GateOrchestrator, *entities.GateConfig, func(), error) {
	logger := zaplog.New(stderr, opts.verbose)
	cleanup := func() { _ = logger.Sync() }

	var configRepo repositories.ConfigRepository = yaml.NewConfigRepository(".")
	cfg, err := configRepo.Load(ctx, opts.configPath)
	if err != nil {
		return nil, nil, cleanup, entities.NewSetupError(entities.StepConfig, err)
	}

	orch := orchestrators.NewGateOrchestrator(
		gateways.NewWorkingContext(),
		gateways.NewEnvironmentActivator(),
		gateways.NewIntegrityGateway(),
		gateways.NewToolRunner(),
		services.NewGateService(),
		orchestrators.GateOrchestratorConfig{
			Stdout: stdout,
			Stderr: stderr,
			Logger: logger,
		},
	)
	return orch, cfg, cleanup, nil
}

func runGate(ctx context.Context, opts *rootOptions, stdout, stderr io.Writer) error {
	orch, cfg, cleanup, err := newGate(ctx, opts, stdout, stderr)
	defer cleanup()
	if err != nil {
		return err
	}

	_, err = orch.Run(ctx, cfg)
	return err
}
