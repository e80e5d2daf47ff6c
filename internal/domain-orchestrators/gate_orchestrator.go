// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ochairo/lintgate/internal/domain/entities"
	"github.com/ochairo/lintgate/internal/domain/interfaces"
	"github.com/ochairo/lintgate/internal/domain/interfaces/gateways"
	"github.com/ochairo/lintgate/internal/domain/interfaces/services"
)

// GateOrchestrator runs the lint gate: enter the project root, activate the
// environment, verify the tool, run it and map its exit status.
type GateOrchestrator struct {
	workdir   gateways.WorkingContext
	activator gateways.EnvironmentActivator
	integrity gateways.IntegrityVerifier
	runner    gateways.ToolRunner
	gate      services.GateService
	logger    interfaces.Logger
	stdout    io.Writer
	stderr    io.Writer
}

// GateOrchestratorConfig holds the output streams handed to the tool.
// Nil writers mean the process's own stdout/stderr.
type GateOrchestratorConfig struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger interfaces.Logger
}

// NewGateOrchestrator creates a new gate orchestrator
func NewGateOrchestrator(
	workdir gateways.WorkingContext,
	activator gateways.EnvironmentActivator,
	integrity gateways.IntegrityVerifier,
	runner gateways.ToolRunner,
	gate services.GateService,
	config GateOrchestratorConfig,
) *GateOrchestrator {
	logger := config.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &GateOrchestrator{
		workdir:   workdir,
		activator: activator,
		integrity: integrity,
		runner:    runner,
		gate:      gate,
		logger:    logger,
		stdout:    config.Stdout,
		stderr:    config.Stderr,
	}
}

// PreparedTool is the outcome of the setup steps
type PreparedTool struct {
	ProjectRoot string
	Environment *gateways.Environment
	ToolPath    string
}

// Prepare performs the setup steps without running the tool. Every error it
// returns is a SetupFailure.
func (o *GateOrchestrator) Prepare(ctx context.Context, cfg *entities.GateConfig) (*PreparedTool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, entities.NewSetupError(entities.StepConfig, err)
	}

	// Step 1: Working context
	root, err := o.workdir.Enter(cfg.ProjectRoot)
	if err != nil {
		return nil, entities.NewSetupError(entities.StepWorkdir, err)
	}
	o.logger.Debug("entered project root", interfaces.F("root", root))

	// Step 2: Environment activation
	env, err := o.activator.Activate(cfg.EnvironmentDir(root))
	if err != nil {
		return nil, entities.NewSetupError(entities.StepEnvironment, err)
	}
	toolPath, err := o.activator.ResolveTool(env, root, cfg.Tool.Name)
	if err != nil {
		return nil, entities.NewSetupError(entities.StepEnvironment, err)
	}
	o.logger.Debug("environment activated",
		interfaces.F("environment", env.Dir),
		interfaces.F("tool", toolPath))

	// Step 3: Tool integrity, only when pinned
	if err := o.verifyIntegrity(ctx, cfg.Integrity, toolPath); err != nil {
		return nil, entities.NewSetupError(entities.StepIntegrity, err)
	}

	return &PreparedTool{
		ProjectRoot: root,
		Environment: env,
		ToolPath:    toolPath,
	}, nil
}

// Run executes the gate. The returned result is nil only on setup failure.
// A non-clean tool status returns both the result and a CheckFailure.
func (o *GateOrchestrator) Run(ctx context.Context, cfg *entities.GateConfig) (*entities.GateResult, error) {
	prepared, err := o.Prepare(ctx, cfg)
	if err != nil {
		o.logger.Debug("gate setup failed", interfaces.F("error", err.Error()))
		return nil, err
	}

	// Step 4: Invoke the tool and wait for it
	startTime := time.Now()
	exitCode, err := o.runner.Run(ctx, gateways.ToolInvocation{
		Path:   prepared.ToolPath,
		Args:   cfg.ToolArgs(),
		Dir:    prepared.ProjectRoot,
		Env:    prepared.Environment.Vars,
		Stdout: o.stdout,
		Stderr: o.stderr,
	})
	if err != nil {
		return nil, entities.NewSetupError(entities.StepInvoke, err)
	}

	// Step 5: Map the captured status
	result := &entities.GateResult{
		ToolPath:     prepared.ToolPath,
		ToolExitCode: exitCode,
		Duration:     time.Since(startTime),
	}
	verdict, checkErr := o.gate.Evaluate(exitCode)
	result.Verdict = verdict

	o.logger.Debug("analysis finished",
		interfaces.F("exit_code", exitCode),
		interfaces.F("verdict", string(verdict)),
		interfaces.F("duration", result.Duration.String()))

	return result, checkErr
}

func (o *GateOrchestrator) verifyIntegrity(ctx context.Context, pins entities.IntegrityConfig, toolPath string) error {
	if !pins.Enabled() {
		return nil
	}
	if o.integrity == nil {
		return fmt.Errorf("integrity pins configured but no verifier available")
	}

	if pins.SHA256 != "" {
		if err := o.integrity.VerifyChecksum(ctx, toolPath, pins.SHA256); err != nil {
			return err
		}
		o.logger.Debug("tool checksum verified", interfaces.F("tool", toolPath))
	}

	if pins.Signature != "" {
		if err := o.integrity.ImportGPGKeyFromFile(pins.Keyring); err != nil {
			return err
		}
		if err := o.integrity.VerifyGPGSignatureFromFile(toolPath, pins.Signature); err != nil {
			return err
		}
		o.logger.Debug("tool signature verified", interfaces.F("signature", pins.Signature))
	}

	return nil
}
