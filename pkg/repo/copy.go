package repo

import (
	"context"
	"os"
	"path/filepath"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/EbonJaeger/soltools/pkg/runner"
	"github.com/EbonJaeger/soltools/pkg/selector"
)

// PackageFileMode is the mode given to every file copied into the
// repository.
const PackageFileMode = 0644

// CopyOptions configures CopyInto.
type CopyOptions struct {
	FS filesystem.FS
	// Source is the directory holding freshly built packages.
	Source string
	// Path is the repository directory.
	Path   string
	Suffix string

	DryRun  bool
	Index   bool
	Runner  runner.Runner
	Indexer Indexer
}

// CopyResult lists the repository paths written.
type CopyResult struct {
	Copied  []string `json:"copied"`
	DryRun  bool     `json:"dry_run"`
	Indexed bool     `json:"indexed"`
}

// CopyInto copies every package file in opts.Source into the repository,
// overwriting files of the same name.
func CopyInto(ctx context.Context, opts CopyOptions) (*CopyResult, error) {
	logger := logging.GetLogger("repo")
	done := logging.LogOperationStart(logger, "copy")
	defer done()

	fsys := opts.FS
	if opts.DryRun {
		fsys = filesystem.ReadOnly(fsys)
	}

	sources, err := selector.Select(fsys, selector.Request{Dir: opts.Source, Suffix: opts.Suffix})
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		logger.Warn().Str("dir", opts.Source).Msg("No package files found")
	}

	result := &CopyResult{DryRun: opts.DryRun}
	for _, src := range sources {
		dst := filepath.Join(opts.Path, filepath.Base(src))
		if sameFile(fsys, src, dst) {
			logger.Info().Str("path", dst).Msg("Package is already in the repository")
			continue
		}
		result.Copied = append(result.Copied, dst)
		if opts.DryRun {
			continue
		}

		logger.Debug().Str("from", src).Str("to", dst).Msg("Copying package")
		if err := fsys.CopyFile(src, dst, PackageFileMode); err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to copy %s to %s", src, opts.Path).
				WithDetail("source", src).
				WithDetail("destination", dst)
		}
	}

	if opts.DryRun {
		return result, nil
	}
	logger.Info().Int("count", len(result.Copied)).Str("path", opts.Path).Msg("Copied packages")

	if opts.Index {
		if err := Index(ctx, opts.Runner, opts.Indexer, opts.Path); err != nil {
			return nil, err
		}
		result.Indexed = true
	}
	return result, nil
}

// sameFile reports whether src and dst name the same file, either by path
// or, on the host filesystem, through links. Copying a file onto itself
// truncates it.
func sameFile(fsys filesystem.FS, src, dst string) bool {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return true
	}
	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return false
	}
	dstInfo, err := fsys.Stat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(srcInfo, dstInfo)
}
