package packaging

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/EbonJaeger/soltools/pkg/runner"
	"github.com/EbonJaeger/soltools/pkg/vcs"
)

const (
	// MakefileName is the per-package Makefile delegating to the shared one.
	MakefileName    = "Makefile"
	MakefileContent = "include ../Makefile.common\n"

	// DefaultScaffold is the generator script, relative to the common dir.
	DefaultScaffold = "Scripts/yauto.py"
)

// InitOptions configures Init.
type InitOptions struct {
	FS        filesystem.FS
	Root      string
	CommonDir string
	Name      string
	// SourceURL is the upstream tarball handed to the scaffold generator.
	SourceURL string

	// Maintain writes MAINTAINERS.md for Maintainer.
	Maintain   bool
	Maintainer Maintainer
	// IdentityLookup supplies the maintainer name and email missing from
	// Maintainer. Usually vcs.GlobalIdentity.
	IdentityLookup func() (vcs.Identity, error)

	Client vcs.Client
	Runner runner.Runner
	// Scaffold is the generator script path relative to the common dir.
	Scaffold string
	// Output receives the scaffold's stdout and stderr. nil means os.Stderr.
	Output io.Writer
	DryRun bool
}

// InitResult describes the created package directory.
type InitResult struct {
	Path string `json:"path"`
	// Files lists the files soltools wrote itself.
	Files []string `json:"files"`
	// Spec is the package.yml produced by the scaffold, if any.
	Spec   *PackageSpec `json:"spec,omitempty"`
	DryRun bool         `json:"dry_run"`
}

// Init creates and populates a new package directory under opts.Root.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	logger := logging.GetLogger("packaging")

	if err := ValidateName(opts.Name); err != nil {
		return nil, err
	}
	if opts.SourceURL == "" {
		return nil, errors.New(errors.ErrInvalidInput, "source URL must not be empty")
	}
	if err := CheckRoot(opts.FS, opts.Root, opts.CommonDir); err != nil {
		return nil, err
	}

	var maintainers string
	if opts.Maintain {
		m, err := ResolveMaintainer(opts.Maintainer, opts.IdentityLookup)
		if err != nil {
			return nil, err
		}
		if maintainers, err = RenderMaintainers(m); err != nil {
			return nil, err
		}
	}

	path := filepath.Join(opts.Root, opts.Name)
	result := &InitResult{Path: path, DryRun: opts.DryRun}
	result.Files = append(result.Files, filepath.Join(path, MakefileName))
	if opts.Maintain {
		result.Files = append(result.Files, filepath.Join(path, MaintainersFile))
	}

	if opts.DryRun {
		exists, err := filesystem.Exists(opts.FS, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to check %s", path)
		}
		if exists {
			return nil, errors.Newf(errors.ErrPrecondition, "%s already exists", path).WithDetail("path", path)
		}
		return result, nil
	}

	logger.Info().Str("path", path).Msg("Creating package directory")
	if err := opts.FS.Mkdir(path, 0755); err != nil {
		if os.IsExist(err) {
			return nil, errors.Wrapf(err, errors.ErrPrecondition, "%s already exists", path).WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to create %s", path).WithDetail("path", path)
	}

	if err := opts.Client.Init(path); err != nil {
		return nil, err
	}

	if err := writeFile(opts.FS, filepath.Join(path, MakefileName), MakefileContent); err != nil {
		return nil, err
	}
	if opts.Maintain {
		if err := writeFile(opts.FS, filepath.Join(path, MaintainersFile), maintainers); err != nil {
			return nil, err
		}
	}

	if err := runScaffold(ctx, opts, path); err != nil {
		return nil, err
	}

	spec, err := ReadPackageSpec(opts.FS, filepath.Join(path, PackageSpecFile))
	if err != nil {
		logger.Warn().Err(err).Msg("Scaffold did not produce a readable package.yml")
	} else {
		result.Spec = spec
	}

	logger.Info().Str("path", path).Msg("Package repository initialised")
	return result, nil
}

func runScaffold(ctx context.Context, opts InitOptions, path string) error {
	commonDir := opts.CommonDir
	if commonDir == "" {
		commonDir = DefaultCommonDir
	}
	scaffold := opts.Scaffold
	if scaffold == "" {
		scaffold = DefaultScaffold
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	cmd := runner.Command{
		Name:   filepath.Join(opts.Root, commonDir, scaffold),
		Args:   []string{opts.SourceURL},
		Dir:    path,
		Stdout: out,
		Stderr: out,
	}
	logger := logging.GetLogger("packaging")
	logger.Info().Str("command", cmd.String()).Msg("Generating package.yml")
	return opts.Runner.Run(ctx, cmd)
}

func writeFile(fsys filesystem.FS, path, content string) error {
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path).WithDetail("path", path)
	}
	return nil
}
