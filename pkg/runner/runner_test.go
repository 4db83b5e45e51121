package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "eopkg", Args: []string{"index", "--skip-signing", "/var/lib/solbuild/local"}}
	assert.Equal(t, "eopkg index --skip-signing /var/lib/solbuild/local", cmd.String())

	cmd = Command{Name: "./yauto.py", Args: []string{"https://example.com/foo 1.0.tar.xz"}}
	assert.Equal(t, "./yauto.py 'https://example.com/foo 1.0.tar.xz'", cmd.String())
}

func TestExecRunnerSuccess(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	err := NewExecRunner().Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "pwd; echo $SOLTOOLS_TEST_VALUE > marker"},
		Dir:    dir,
		Env:    []string{"SOLTOOLS_TEST_VALUE=hello"},
		Stdout: &stdout,
	})
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, strings.TrimSpace(stdout.String()))

	content, err := os.ReadFile(filepath.Join(dir, "marker"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	err := NewExecRunner().Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 3"}})
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
	assert.Contains(t, err.Error(), "sh exited with status 3")
	assert.Equal(t, 3, errors.GetErrorDetails(err)["exit_code"])
}

func TestExecRunnerMissingBinary(t *testing.T) {
	err := NewExecRunner().Run(context.Background(), Command{Name: "soltools-no-such-binary"})
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
	assert.Contains(t, err.Error(), "failed to run soltools-no-such-binary")
}

func TestDryRunner(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()

	err := NewDryRunner(&out).Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "touch created"},
		Dir:  dir,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "would run (in "+dir+"): sh -c 'touch created'")
	_, statErr := os.Stat(filepath.Join(dir, "created"))
	assert.True(t, os.IsNotExist(statErr))
}
