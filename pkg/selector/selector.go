package selector

import (
	"path/filepath"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/logging"
)

// Request describes one selection.
type Request struct {
	// Dir is the directory whose entries are considered.
	Dir string
	// Suffix is the package file extension, without the dot. Defaults to
	// DefaultSuffix.
	Suffix string
	// Remove lists the package names to select. nil selects every package
	// file; an empty, non-nil slice selects nothing.
	Remove []string
	// Keep lists package names that are never selected. nil keeps nothing.
	Keep []string
}

// Select returns the paths of the non-directory entries in req.Dir that match the
// remove set and do not match the keep set, in directory order.
func Select(fsys filesystem.FS, req Request) ([]string, error) {
	logger := logging.GetLogger("selector")

	remove, keep, err := compileRequest(req)
	if err != nil {
		return nil, err
	}

	entries, err := fsys.ReadDir(req.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read directory %s", req.Dir).
			WithDetail("path", req.Dir)
	}

	selected := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if !remove.Match(name) {
			continue
		}
		if keep.Match(name) {
			logger.Debug().Str("file", name).Msg("Keeping file matched by keep pattern")
			continue
		}
		selected = append(selected, filepath.Join(req.Dir, name))
	}

	logger.Debug().
		Str("dir", req.Dir).
		Strs("remove", remove.Patterns()).
		Strs("keep", keep.Patterns()).
		Int("entries", len(entries)).
		Int("selected", len(selected)).
		Msg("Selection completed")

	return selected, nil
}

func compileRequest(req Request) (remove, keep *PatternSet, err error) {
	if req.Remove == nil {
		remove = CompileAll(req.Suffix)
	} else if remove, err = Compile(req.Remove, req.Suffix); err != nil {
		return nil, nil, err
	}

	if req.Keep != nil {
		if keep, err = Compile(req.Keep, req.Suffix); err != nil {
			return nil, nil, err
		}
	}
	return remove, keep, nil
}
