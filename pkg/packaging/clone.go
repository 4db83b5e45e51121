package packaging

import (
	"context"
	"io"
	"path/filepath"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/EbonJaeger/soltools/pkg/vcs"
)

// DefaultURLTemplate points at the Solus package sources.
const DefaultURLTemplate = "https://dev.getsol.us/source/{name}.git"

// CloneOptions configures Clone.
type CloneOptions struct {
	FS          filesystem.FS
	Root        string
	CommonDir   string
	Name        string
	URLTemplate string
	Client      vcs.Client
	// Progress receives the clone progress output. May be nil.
	Progress io.Writer
	DryRun   bool
}

type CloneResult struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Path   string `json:"path"`
	DryRun bool   `json:"dry_run"`
}

// Clone clones the named package repository into <root>/<name>.
func Clone(ctx context.Context, opts CloneOptions) (*CloneResult, error) {
	logger := logging.GetLogger("packaging")

	if err := ValidateName(opts.Name); err != nil {
		return nil, err
	}
	if err := CheckRoot(opts.FS, opts.Root, opts.CommonDir); err != nil {
		return nil, err
	}

	template := opts.URLTemplate
	if template == "" {
		template = DefaultURLTemplate
	}
	result := &CloneResult{
		Name:   opts.Name,
		URL:    PackageURL(template, opts.Name),
		Path:   filepath.Join(opts.Root, opts.Name),
		DryRun: opts.DryRun,
	}

	exists, err := filesystem.Exists(opts.FS, result.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to check %s", result.Path)
	}
	if exists {
		return nil, errors.Newf(errors.ErrPrecondition, "%s already exists", result.Path).
			WithDetail("path", result.Path)
	}

	if opts.DryRun {
		return result, nil
	}

	logger.Info().Str("url", result.URL).Str("path", result.Path).Msg("Cloning package repository")
	if err := opts.Client.Clone(ctx, result.URL, result.Path, opts.Progress); err != nil {
		return nil, err
	}
	return result, nil
}
