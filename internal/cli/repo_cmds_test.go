package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/runner"
	"github.com/EbonJaeger/soltools/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCleanCommand(t *testing.T) {
	h := newHarness(t)
	h.addFiles(t, repoDir, "foo-1.0.eopkg", "bar-2.0.eopkg", "baz-1.0.eopkg")

	require.NoError(t, h.run("clean", "foo", "baz", "--keep", "baz"))

	assert.ElementsMatch(t, []string{"bar-2.0.eopkg", "baz-1.0.eopkg"}, testutil.ListNames(t, h.fs, repoDir))
	assert.Contains(t, h.stdout.String(), "removed foo-1.0.eopkg")
	require.Len(t, h.escalated, 1)
	assert.True(t, h.escalated[0].Enabled)
	assert.Equal(t, "/usr/bin/sudo", h.escalated[0].SudoPath)
}

func TestCleanCommandRemovesEverything(t *testing.T) {
	h := newHarness(t)
	h.addFiles(t, repoDir, "a.eopkg", "b.eopkg", "eopkg-index.xml")

	require.NoError(t, h.run("clean"))
	assert.Equal(t, []string{"eopkg-index.xml"}, testutil.ListNames(t, h.fs, repoDir))
}

func TestCleanCommandDryRun(t *testing.T) {
	h := newHarness(t)
	h.addFiles(t, repoDir, "a.eopkg", "b.eopkg")

	require.NoError(t, h.run("clean", "--dry-run", "--index"))

	assert.Len(t, testutil.ListNames(t, h.fs, repoDir), 2)
	assert.Contains(t, h.stdout.String(), "would remove a.eopkg")
	assert.Empty(t, h.escalated)
	h.runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestCleanCommandWithIndex(t *testing.T) {
	h := newHarness(t)
	h.addFiles(t, repoDir, "a.eopkg")
	h.runner.On("Run", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, h.run("clean", "--index"))

	cmds := h.runner.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "eopkg index --skip-signing "+repoDir, cmds[0].String())
}

func TestCleanCommandMalformedPattern(t *testing.T) {
	h := newHarness(t)
	h.addFiles(t, repoDir, "a.eopkg")

	err := h.run("clean", "a[")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternSyntax))
	assert.Len(t, testutil.ListNames(t, h.fs, repoDir), 1)
}

func TestCleanCommandEscalated(t *testing.T) {
	h := newHarness(t)
	h.escalateResult = true
	h.addFiles(t, repoDir, "a.eopkg")

	require.NoError(t, h.run("clean"))

	// the privileged child did the work
	assert.Len(t, testutil.ListNames(t, h.fs, repoDir), 1)
	assert.Empty(t, h.stdout.String())
}

func TestCleanCommandCustomRepo(t *testing.T) {
	h := newHarness(t)
	h.addFiles(t, "/srv/repo", "a.eopkg")
	h.addFiles(t, repoDir, "a.eopkg")

	require.NoError(t, h.run("clean", "--repo", "/srv/repo"))
	assert.Empty(t, testutil.ListNames(t, h.fs, "/srv/repo"))
	assert.Len(t, testutil.ListNames(t, h.fs, repoDir), 1)
}

func TestCleanCommandRepoFromEnv(t *testing.T) {
	h := newHarness(t)
	t.Setenv("SOLTOOLS_REPOSITORY_PATH", "/srv/repo")
	h.addFiles(t, "/srv/repo", "a.eopkg")

	require.NoError(t, h.run("clean"))
	assert.Empty(t, testutil.ListNames(t, h.fs, "/srv/repo"))
}

func TestEscalatedChildGetsResolvedRepository(t *testing.T) {
	h := newHarness(t)
	h.escalateResult = true
	t.Setenv("SOLTOOLS_REPOSITORY_PATH", "/srv/repo")

	require.NoError(t, h.run("clean", "-k", "foo"))
	require.Len(t, h.escalated, 1)
	assert.Equal(t, []string{"--repo=/srv/repo", "clean", "-k", "foo"}, h.escalated[0].Args)

	// sudo drops the environment; the child must still clean /srv/repo
	require.NoError(t, os.Unsetenv("SOLTOOLS_REPOSITORY_PATH"))
	child := newHarness(t)
	child.addFiles(t, "/srv/repo", "foo-1.0.eopkg", "bar-1.0.eopkg")
	child.addFiles(t, repoDir, "bar-1.0.eopkg")

	require.NoError(t, child.run(h.escalated[0].Args...))
	assert.Equal(t, []string{"foo-1.0.eopkg"}, testutil.ListNames(t, child.fs, "/srv/repo"))
	assert.Equal(t, []string{"bar-1.0.eopkg"}, testutil.ListNames(t, child.fs, repoDir))
}

func TestEscalatedChildGetsConfigFile(t *testing.T) {
	h := newHarness(t)
	h.escalateResult = true
	path := filepath.Join(t.TempDir(), "soltools.toml")
	require.NoError(t, os.WriteFile(path, []byte("repository_path = \"/srv/other\"\n"), 0644))

	require.NoError(t, h.run("copy", "--config", path))
	require.Len(t, h.escalated, 1)
	assert.Equal(t,
		[]string{"--repo=/srv/other", "--config=" + path, "copy", "--config", path},
		h.escalated[0].Args)
}

func TestCopyCommand(t *testing.T) {
	h := newHarness(t)
	h.addFiles(t, workDir, "nano-7.2-5-1-x86_64.eopkg", "package.yml")
	h.runner.On("Run", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, h.run("copy", "--index"))

	assert.Equal(t, []string{"nano-7.2-5-1-x86_64.eopkg"}, testutil.ListNames(t, h.fs, repoDir))
	assert.Contains(t, h.stdout.String(), "copied nano-7.2-5-1-x86_64.eopkg")
	h.runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestIndexerOutputStaysOffStdout(t *testing.T) {
	h := newHarness(t)
	h.runner.On("Run", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, h.run("index", "--format", "json"))

	cmds := h.runner.Commands()
	require.Len(t, cmds, 1)
	assert.Same(t, h.stderr, cmds[0].Stdout)
	assert.Same(t, h.stderr, cmds[0].Stderr)
	assert.True(t, json.Valid(h.stdout.Bytes()))
}

func TestCopyCommandRejectsArgs(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.run("copy", "nano"))
}

func TestIndexCommand(t *testing.T) {
	h := newHarness(t)
	h.runner.On("Run", mock.Anything, mock.MatchedBy(func(cmd runner.Command) bool {
		return cmd.Name == "eopkg" && cmd.Dir == repoDir
	})).Return(nil)

	require.NoError(t, h.run("index"))
	assert.Contains(t, h.stdout.String(), "Indexed "+repoDir+" (0 packages)")
	h.runner.AssertExpectations(t)
}

func TestIndexCommandCustomIndexer(t *testing.T) {
	h := newHarness(t)
	t.Setenv("SOLTOOLS_INDEXER__COMMAND", "/opt/eopkg/bin/eopkg.py3")
	h.runner.On("Run", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, h.run("index"))
	assert.Equal(t, "/opt/eopkg/bin/eopkg.py3", h.runner.Commands()[0].Name)
}

func TestIndexCommandFailure(t *testing.T) {
	h := newHarness(t)
	h.runner.On("Run", mock.Anything, mock.Anything).
		Return(errors.New(errors.ErrExternalTool, "eopkg exited with status 1"))

	err := h.run("index")
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
}

func TestIndexCommandDryRun(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("index", "--dry-run"))
	assert.Contains(t, h.stdout.String(), "would index")
	h.runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestListCommandJSON(t *testing.T) {
	h := newHarness(t)
	h.addFiles(t, repoDir, "nano.eopkg")

	require.NoError(t, h.run("list", "--format", "json"))

	var listing struct {
		Path  string `json:"path"`
		Files []struct {
			Name string `json:"name"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &listing))
	assert.Equal(t, repoDir, listing.Path)
	require.Len(t, listing.Files, 1)
	assert.Equal(t, "nano.eopkg", listing.Files[0].Name)
	assert.Empty(t, h.escalated)
}

func TestListCommandMissingRepository(t *testing.T) {
	h := newHarness(t)

	err := h.run("list", "--repo", filepath.Join("/nonexistent", "repo"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}
