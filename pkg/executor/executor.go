package executor

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/smbsnap/pkg/logging"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultShell interprets shell-line commands
const DefaultShell = "/bin/sh"

// Runner launches a process and returns its combined stdout and stderr.
// A nil error means the process exited with status 0.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the os/exec backed Runner
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Options contains configuration for the executor
type Options struct {
	Runner Runner
	DryRun bool
	Shell  string
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
}

// Executor runs commands and reports their outcomes
type Executor struct {
	runner Runner
	dryRun bool
	shell  string
	logger zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	shell := opts.Shell
	if shell == "" {
		shell = DefaultShell
	}

	return &Executor{
		runner: runner,
		dryRun: opts.DryRun,
		shell:  shell,
		logger: logger,
	}
}

// DryRun reports whether the executor only logs commands
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// Run executes cmd and returns its outcome. The returned error is non-nil
// only for a malformed command, which is never launched.
func (e *Executor) Run(ctx context.Context, cmd types.Command) (types.CommandOutcome, error) {
	outcome := types.CommandOutcome{Command: cmd, DryRun: e.dryRun}

	if err := cmd.Validate(); err != nil {
		return outcome, err
	}

	e.logger.Info().
		Str("kind", cmd.Kind.String()).
		Bool("dry_run", e.dryRun).
		Msgf("Command: %s", cmd.String())

	if e.dryRun {
		outcome.Success = true
		return outcome, nil
	}

	name, args := e.argv(cmd)
	logging.LogCommand(e.logger, name, args)

	start := time.Now()
	output, err := e.runner.Run(ctx, name, args...)
	outcome.Duration = time.Since(start)
	outcome.Output = string(output)

	if err != nil {
		outcome.Err = err
		outcome.ExitCode = exitCode(err)
		e.logger.Error().
			Err(err).
			Int("exit_code", outcome.ExitCode).
			Str("command", cmd.String()).
			Msgf("Last command failed!\n%s", strings.TrimRight(outcome.Output, "\n"))
		return outcome, nil
	}

	outcome.Success = true
	e.logger.Debug().
		Str("command", cmd.String()).
		Dur("duration", outcome.Duration).
		Msg("Command succeeded")

	return outcome, nil
}

// argv resolves the program and arguments for a validated command
func (e *Executor) argv(cmd types.Command) (string, []string) {
	if cmd.Kind == types.CommandShell {
		return e.shell, []string{"-c", cmd.Line}
	}
	return cmd.Args[0], cmd.Args[1:]
}

// exitCode extracts the process exit status, -1 if the process never ran
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
