package repo

import (
	"path/filepath"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/selector"
)

// PackageFile is a package file present in the repository directory.
type PackageFile struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Indexed bool   `json:"indexed"`
}

// Listing is the state of the repository directory and its index.
type Listing struct {
	Path  string        `json:"path"`
	Files []PackageFile `json:"files"`
	Index []IndexEntry  `json:"index"`
}

// Stale returns the index entries whose package file is gone.
func (l *Listing) Stale() []IndexEntry {
	present := make(map[string]bool, len(l.Files))
	for _, f := range l.Files {
		present[f.Name] = true
	}
	var stale []IndexEntry
	for _, e := range l.Index {
		if !present[e.FileName()] {
			stale = append(stale, e)
		}
	}
	return stale
}

// ListOptions configures List.
type ListOptions struct {
	FS     filesystem.FS
	Path   string
	Suffix string
	// IndexFile is the index file name inside Path. Empty means
	// IndexFileName.
	IndexFile string
}

// List reports the package files in the repository and what its index
// records.
func List(opts ListOptions) (*Listing, error) {
	paths, err := selector.Select(opts.FS, selector.Request{Dir: opts.Path, Suffix: opts.Suffix})
	if err != nil {
		return nil, err
	}

	indexFile := opts.IndexFile
	if indexFile == "" {
		indexFile = IndexFileName
	}
	entries, err := ReadIndexFile(opts.FS, filepath.Join(opts.Path, indexFile))
	if err != nil {
		return nil, err
	}

	indexed := make(map[string]bool, len(entries))
	for _, e := range entries {
		indexed[e.FileName()] = true
	}

	listing := &Listing{Path: opts.Path, Index: entries}
	for _, p := range paths {
		info, err := opts.FS.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to stat %s", p).WithDetail("path", p)
		}
		name := filepath.Base(p)
		listing.Files = append(listing.Files, PackageFile{
			Name:    name,
			Size:    info.Size(),
			Indexed: indexed[name],
		})
	}
	return listing, nil
}
