// Package runner runs external tools and reports only whether they
// succeeded.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"al.essio.dev/pkg/shellescape"
	solerrors "github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/rs/zerolog"
)

// Command describes one invocation of an external tool.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is appended to the current environment.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String returns the command line, quoted for a POSIX shell.
func (c Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Name}, c.Args...))
}

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates a runner that executes processes on the host.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{logger: logging.GetLogger("runner")}
}

// Run starts the command and waits for it. A spawn failure or a non-zero
// exit status is returned as an ErrExternalTool error.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	logging.LogCommand(r.logger, cmd.Name, cmd.Args)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	err := c.Run()
	if err == nil {
		r.logger.Debug().Str("command", cmd.String()).Msg("Command succeeded")
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		r.logger.Debug().Str("command", cmd.String()).Int("exit_code", code).Msg("Command failed")
		return solerrors.Wrapf(err, solerrors.ErrExternalTool, "%s exited with status %d", cmd.Name, code).
			WithDetail("command", cmd.String()).
			WithDetail("exit_code", code)
	}

	return solerrors.Wrapf(err, solerrors.ErrExternalTool, "failed to run %s", cmd.Name).
		WithDetail("command", cmd.String())
}

// DryRunner reports commands instead of running them.
type DryRunner struct {
	Out    io.Writer
	logger zerolog.Logger
}

// NewDryRunner creates a runner that prints each command line to out.
func NewDryRunner(out io.Writer) *DryRunner {
	return &DryRunner{Out: out, logger: logging.GetLogger("runner.dry")}
}

// Run prints the command and always succeeds.
func (r *DryRunner) Run(_ context.Context, cmd Command) error {
	r.logger.Info().Str("command", cmd.String()).Str("dir", cmd.Dir).Msg("Dry run - command not executed")
	if r.Out != nil {
		if cmd.Dir != "" {
			fmt.Fprintf(r.Out, "would run (in %s): %s\n", cmd.Dir, cmd)
		} else {
			fmt.Fprintf(r.Out, "would run: %s\n", cmd)
		}
	}
	return nil
}
