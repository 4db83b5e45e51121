package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/packaging"
	"github.com/EbonJaeger/soltools/pkg/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(&buf, FormatAuto), &buf
}

func TestNewRendererAutoOnBuffer(t *testing.T) {
	r, _ := textRenderer()
	assert.Equal(t, FormatText, r.Format())
}

func TestRenderClean(t *testing.T) {
	r, buf := textRenderer()

	require.NoError(t, r.Clean(&repo.CleanResult{
		Removed: []string{"/repo/foo-1.0.eopkg"},
		Indexed: true,
	}))
	assert.Equal(t, "  ✗ removed foo-1.0.eopkg\n✓ Repository indexed\n", buf.String())
}

func TestRenderCleanDryRun(t *testing.T) {
	r, buf := textRenderer()

	require.NoError(t, r.Clean(&repo.CleanResult{
		Removed: []string{"/repo/a.eopkg", "/repo/b.eopkg"},
		DryRun:  true,
	}))
	assert.Equal(t, "  ○ would remove a.eopkg\n  ○ would remove b.eopkg\n\n"+MsgDryRunNotice+"\n", buf.String())
}

func TestRenderCleanNothing(t *testing.T) {
	r, buf := textRenderer()
	require.NoError(t, r.Clean(&repo.CleanResult{}))
	assert.Equal(t, "No packages to remove.\n", buf.String())
}

func TestRenderCopy(t *testing.T) {
	r, buf := textRenderer()

	require.NoError(t, r.Copy(&repo.CopyResult{Copied: []string{"/repo/nano.eopkg"}}))
	assert.Equal(t, "  ✓ copied nano.eopkg to /repo\n", buf.String())
}

func TestRenderIndex(t *testing.T) {
	r, buf := textRenderer()

	require.NoError(t, r.Index("/repo", []repo.IndexEntry{{Name: "nano"}}, false))
	assert.Equal(t, "✓ Indexed /repo (1 packages)\n", buf.String())
}

func TestRenderClone(t *testing.T) {
	r, buf := textRenderer()

	require.NoError(t, r.Clone(&packaging.CloneResult{Name: "nano", URL: "https://x/nano.git", Path: "/pkgs/nano"}))
	assert.Equal(t, "✓ Cloned nano into /pkgs/nano\n", buf.String())
}

func TestRenderInit(t *testing.T) {
	r, buf := textRenderer()

	require.NoError(t, r.Init(&packaging.InitResult{
		Path:  "/pkgs/nano",
		Files: []string{"/pkgs/nano/Makefile", "/pkgs/nano/MAINTAINERS.md"},
		Spec:  &packaging.PackageSpec{Name: "nano", Version: "7.2", Release: 5},
	}))
	assert.Equal(t, "Created /pkgs/nano\n  - Makefile\n  - MAINTAINERS.md\n✓ nano 7.2-5\n", buf.String())
}

func TestRenderListingText(t *testing.T) {
	r, buf := textRenderer()

	require.NoError(t, r.Listing(&repo.Listing{
		Path: "/repo",
		Files: []repo.PackageFile{
			{Name: "nano.eopkg", Size: 2048, Indexed: true},
			{Name: "vim.eopkg", Size: 10, Indexed: false},
		},
		Index: []repo.IndexEntry{
			{Name: "nano", URI: "n/nano/nano.eopkg"},
			{Name: "old", URI: "o/old/old.eopkg"},
		},
	}))
	assert.Equal(t,
		"nano.eopkg\t2.0 kB\tindexed\nvim.eopkg\t10 B\tnot indexed\nold.eopkg\tmissing\tindexed\n",
		buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatJSON)

	require.NoError(t, r.Clean(&repo.CleanResult{Removed: []string{"/repo/a.eopkg"}, DryRun: true}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["dry_run"])
	assert.Equal(t, []interface{}{"/repo/a.eopkg"}, decoded["removed"])
}

func TestRenderError(t *testing.T) {
	r, _ := textRenderer()

	assert.Equal(t, "", r.Error(nil))
	assert.Equal(t, "Error: boom", r.Error(fmt.Errorf("boom")))
	assert.Equal(t,
		"Error: not in packaging root directory: 'common' not found [PRECONDITION]",
		r.Error(errors.New(errors.ErrPrecondition, "not in packaging root directory: 'common' not found")))

	jr := NewRenderer(&bytes.Buffer{}, FormatJSON)
	assert.JSONEq(t, `{"error":"boom","code":"IO"}`, jr.Error(errors.New(errors.ErrIO, "boom")))
	assert.JSONEq(t,
		`{"error":"boom","code":"IO","details":{"path":"/srv/repo/a.eopkg"}}`,
		jr.Error(errors.New(errors.ErrIO, "boom").WithDetail("path", "/srv/repo/a.eopkg")))
}
