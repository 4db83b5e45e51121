package repo

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/EbonJaeger/soltools/pkg/runner"
	"github.com/beevik/etree"
)

// IndexFileName is the file eopkg writes when indexing a repository.
const IndexFileName = "eopkg-index.xml"

// Indexer describes the indexing tool invocation.
type Indexer struct {
	Binary          string
	Subcommand      string
	SkipSigningFlag string
	// Output receives the tool's stdout and stderr. nil means os.Stderr.
	Output io.Writer
}

// DefaultIndexer runs `eopkg index --skip-signing`.
func DefaultIndexer() Indexer {
	return Indexer{
		Binary:          "eopkg",
		Subcommand:      "index",
		SkipSigningFlag: "--skip-signing",
	}
}

// Invocation returns the command that indexes the repository at path.
// It runs inside path.
func (i Indexer) Invocation(path string) runner.Command {
	var args []string
	if i.Subcommand != "" {
		args = append(args, i.Subcommand)
	}
	if i.SkipSigningFlag != "" {
		args = append(args, i.SkipSigningFlag)
	}
	args = append(args, path)

	out := i.Output
	if out == nil {
		out = os.Stderr
	}
	return runner.Command{
		Name:   i.Binary,
		Args:   args,
		Dir:    path,
		Stdout: out,
		Stderr: out,
	}
}

// Index regenerates the repository index at path.
func Index(ctx context.Context, r runner.Runner, idx Indexer, path string) error {
	logger := logging.GetLogger("repo")
	if idx.Binary == "" {
		out := idx.Output
		idx = DefaultIndexer()
		idx.Output = out
	}

	logger.Info().Str("path", path).Msg("Indexing repository")
	if err := r.Run(ctx, idx.Invocation(path)); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Indexing failed")
		return err
	}
	return nil
}

// IndexEntry is one package recorded in the repository index.
type IndexEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Release string `json:"release"`
	URI     string `json:"uri"`
}

// FileName returns the base name of the package file.
func (e IndexEntry) FileName() string {
	return filepath.Base(e.URI)
}

// ReadIndex reads <path>/eopkg-index.xml. A missing index yields no
// entries.
func ReadIndex(fsys filesystem.FS, path string) ([]IndexEntry, error) {
	return ReadIndexFile(fsys, filepath.Join(path, IndexFileName))
}

// ReadIndexFile parses the index at file.
func ReadIndexFile(fsys filesystem.FS, file string) ([]IndexEntry, error) {
	exists, err := filesystem.Exists(fsys, file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to stat %s", file).WithDetail("path", file)
	}
	if !exists {
		return nil, nil
	}

	data, err := fsys.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read %s", file).WithDetail("path", file)
	}
	return parseIndex(data, file)
}

func parseIndex(data []byte, file string) ([]IndexEntry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "malformed index %s", file).WithDetail("path", file)
	}

	root := doc.SelectElement("PISI")
	if root == nil {
		return nil, errors.Newf(errors.ErrIO, "malformed index %s: missing PISI element", file).
			WithDetail("path", file)
	}

	var entries []IndexEntry
	for _, pkg := range root.SelectElements("Package") {
		entry := IndexEntry{
			Name: childText(pkg, "Name"),
			URI:  childText(pkg, "PackageURI"),
		}
		// The first update in the history is the current one.
		if update := pkg.FindElement("History/Update"); update != nil {
			entry.Release = update.SelectAttrValue("release", "")
			entry.Version = childText(update, "Version")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
