// Package permission re-runs soltools as root when a command needs to
// write to the system package repository.
package permission

import (
	"context"
	"io"
	"os"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/EbonJaeger/soltools/pkg/runner"
)

// DefaultSudoPath is used when Options.SudoPath is empty.
const DefaultSudoPath = "/usr/bin/sudo"

// Replaced in tests.
var (
	getuid     = os.Getuid
	geteuid    = os.Geteuid
	executable = os.Executable
)

// Options configures EscalateIfNeeded.
type Options struct {
	// Enabled turns escalation on. When false the caller keeps running
	// unprivileged.
	Enabled  bool
	SudoPath string
	// Args are passed to the re-executed binary. nil means os.Args[1:].
	Args   []string
	Runner runner.Runner

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// EscalateIfNeeded re-executes the current binary through sudo unless the
// process already runs as root. It reports true when the privileged child
// ran, in which case the caller must stop: the child has done the work.
func EscalateIfNeeded(ctx context.Context, opts Options) (bool, error) {
	logger := logging.GetLogger("permission")

	if getuid() == 0 && geteuid() == 0 {
		return false, nil
	}
	if !opts.Enabled {
		logger.Debug().Msg("Not running as root and escalation is disabled")
		return false, nil
	}

	self, err := executable()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrPermission, "failed to locate the soltools executable")
	}

	sudo := opts.SudoPath
	if sudo == "" {
		sudo = DefaultSudoPath
	}
	args := opts.Args
	if args == nil {
		args = os.Args[1:]
	}

	cmd := runner.Command{
		Name:   sudo,
		Args:   append([]string{self}, args...),
		Stdin:  orDefault(opts.Stdin, os.Stdin),
		Stdout: orDefaultWriter(opts.Stdout, os.Stdout),
		Stderr: orDefaultWriter(opts.Stderr, os.Stderr),
	}

	logger.Info().Str("command", cmd.String()).Msg("Re-running as root")
	if err := opts.Runner.Run(ctx, cmd); err != nil {
		return true, errors.Wrap(err, errors.ErrPermission, "privileged run failed")
	}
	return true, nil
}

func orDefault(r io.Reader, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orDefaultWriter(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
