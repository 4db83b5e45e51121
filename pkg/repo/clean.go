package repo

import (
	"context"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/EbonJaeger/soltools/pkg/runner"
	"github.com/EbonJaeger/soltools/pkg/selector"
)

// CleanOptions configures Clean.
type CleanOptions struct {
	FS   filesystem.FS
	Path string
	// Suffix is the package file extension. Empty means eopkg.
	Suffix string
	// Remove names the packages to delete. nil deletes every package file.
	Remove []string
	// Keep names packages that are never deleted.
	Keep []string

	DryRun bool
	// Index regenerates the index after deleting. Ignored in a dry run.
	Index   bool
	Runner  runner.Runner
	Indexer Indexer
}

// CleanResult reports what Clean did, or would have done in a dry run.
type CleanResult struct {
	Removed []string `json:"removed"`
	DryRun  bool     `json:"dry_run"`
	Indexed bool     `json:"indexed"`
}

// Clean deletes the selected package files from the repository. The first
// deletion failure aborts the run; files already removed stay removed.
func Clean(ctx context.Context, opts CleanOptions) (*CleanResult, error) {
	logger := logging.GetLogger("repo")
	done := logging.LogOperationStart(logger, "clean")
	defer done()

	fsys := opts.FS
	if opts.DryRun {
		fsys = filesystem.ReadOnly(fsys)
	}

	selected, err := selector.Select(fsys, selector.Request{
		Dir:    opts.Path,
		Suffix: opts.Suffix,
		Remove: opts.Remove,
		Keep:   opts.Keep,
	})
	if err != nil {
		return nil, err
	}

	result := &CleanResult{Removed: selected, DryRun: opts.DryRun}
	if opts.DryRun {
		logger.Info().Int("count", len(selected)).Msg("Dry run, nothing removed")
		return result, nil
	}

	for _, path := range selected {
		logger.Debug().Str("path", path).Msg("Removing package")
		if err := fsys.Remove(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to remove %s", path).
				WithDetail("path", path)
		}
	}
	logger.Info().Int("count", len(selected)).Str("path", opts.Path).Msg("Removed packages")

	if opts.Index {
		if err := Index(ctx, opts.Runner, opts.Indexer, opts.Path); err != nil {
			return nil, err
		}
		result.Indexed = true
	}
	return result, nil
}
