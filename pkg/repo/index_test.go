package repo

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/runner"
	"github.com/EbonJaeger/soltools/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleIndex = `<?xml version="1.0" encoding="utf-8"?>
<PISI>
  <Distribution>
    <SourceName>Solus</SourceName>
  </Distribution>
  <Package>
    <Name>nano</Name>
    <Summary xml:lang="en">Small, friendly text editor</Summary>
    <History>
      <Update release="5">
        <Date>2024-01-10</Date>
        <Version>7.2</Version>
      </Update>
      <Update release="4">
        <Date>2023-06-01</Date>
        <Version>7.1</Version>
      </Update>
    </History>
    <PackageURI>n/nano/nano-7.2-5-1-x86_64.eopkg</PackageURI>
  </Package>
  <Package>
    <Name>nano-dbginfo</Name>
    <History>
      <Update release="5">
        <Version>7.2</Version>
      </Update>
    </History>
    <PackageURI>n/nano/nano-dbginfo-7.2-5-1-x86_64.eopkg</PackageURI>
  </Package>
</PISI>
`

func TestIndexerInvocation(t *testing.T) {
	cmd := DefaultIndexer().Invocation(repoDir)

	assert.Equal(t, "eopkg", cmd.Name)
	assert.Equal(t, []string{"index", "--skip-signing", repoDir}, cmd.Args)
	assert.Equal(t, repoDir, cmd.Dir)
	assert.Equal(t, "eopkg index --skip-signing /var/lib/solbuild/local", cmd.String())
}

func TestIndexerInvocationWithoutSigningFlag(t *testing.T) {
	cmd := Indexer{Binary: "eopkg", Subcommand: "index"}.Invocation(repoDir)
	assert.Equal(t, []string{"index", repoDir}, cmd.Args)
}

func TestIndexerInvocationOutput(t *testing.T) {
	cmd := DefaultIndexer().Invocation(repoDir)
	assert.Same(t, os.Stderr, cmd.Stdout)
	assert.Same(t, os.Stderr, cmd.Stderr)

	out := &bytes.Buffer{}
	idx := DefaultIndexer()
	idx.Output = out
	cmd = idx.Invocation(repoDir)
	assert.Same(t, out, cmd.Stdout)
	assert.Same(t, out, cmd.Stderr)
}

func TestIndexKeepsOutputWithDefaultIndexer(t *testing.T) {
	out := &bytes.Buffer{}
	r := &testutil.MockRunner{}
	r.On("Run", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, Index(context.Background(), r, Indexer{Output: out}, repoDir))
	cmds := r.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "eopkg", cmds[0].Name)
	assert.Same(t, out, cmds[0].Stdout)
}

func TestIndex(t *testing.T) {
	r := &testutil.MockRunner{}
	r.On("Run", mock.Anything, mock.MatchedBy(func(cmd runner.Command) bool {
		return cmd.Name == "eopkg" && cmd.Dir == repoDir
	})).Return(nil)

	// A zero Indexer falls back to the default.
	require.NoError(t, Index(context.Background(), r, Indexer{}, repoDir))
	r.AssertExpectations(t)
}

func TestIndexFailure(t *testing.T) {
	r := &testutil.MockRunner{}
	r.On("Run", mock.Anything, mock.Anything).
		Return(errors.New(errors.ErrExternalTool, "eopkg exited with status 1"))

	err := Index(context.Background(), r, DefaultIndexer(), repoDir)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
}

func TestReadIndex(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(repoDir, 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(repoDir, IndexFileName), []byte(sampleIndex), 0644))

	entries, err := ReadIndex(fsys, repoDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, IndexEntry{
		Name:    "nano",
		Version: "7.2",
		Release: "5",
		URI:     "n/nano/nano-7.2-5-1-x86_64.eopkg",
	}, entries[0])
	assert.Equal(t, "nano-dbginfo-7.2-5-1-x86_64.eopkg", entries[1].FileName())
}

func TestReadIndexMissing(t *testing.T) {
	fsys := testutil.NewPackageFS(t, repoDir, "nano.eopkg")

	entries, err := ReadIndex(fsys, repoDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadIndexMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not xml", "<PISI><<Package>"},
		{"wrong root", "<Index></Index>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := filesystem.NewMemory()
			file := filepath.Join(repoDir, "custom-index.xml")
			require.NoError(t, fsys.MkdirAll(repoDir, 0755))
			require.NoError(t, fsys.WriteFile(file, []byte(tt.content), 0644))

			_, err := ReadIndexFile(fsys, file)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
		})
	}
}
