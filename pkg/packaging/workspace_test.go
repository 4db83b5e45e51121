package packaging

import (
	"testing"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/home/packager/solus-packages"

func newRoot(t *testing.T) filesystem.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(root+"/common/Scripts", 0755))
	return fsys
}

func TestCheckRoot(t *testing.T) {
	assert.NoError(t, CheckRoot(newRoot(t), root, ""))
}

func TestCheckRootMissingCommon(t *testing.T) {
	fsys := testutil.NewPackageFS(t, root)

	err := CheckRoot(fsys, root, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrecondition))
	assert.Equal(t, "not in packaging root directory: 'common' not found", err.Error())
}

func TestCheckRootCommonIsFile(t *testing.T) {
	fsys := testutil.NewPackageFS(t, root, "common")

	err := CheckRoot(fsys, root, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrecondition))
}

func TestCheckRootCustomCommonDir(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(root+"/shared", 0755))

	assert.NoError(t, CheckRoot(fsys, root, "shared"))
	assert.Error(t, CheckRoot(fsys, root, "common"))
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"nano", true},
		{"python-requests", true},
		{"font-noto-cjk", true},
		{"", false},
		{".", false},
		{"..", false},
		{"foo/bar", false},
		{"-rf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			}
		})
	}
}

func TestPackageURL(t *testing.T) {
	assert.Equal(t, "https://dev.getsol.us/source/nano.git", PackageURL(DefaultURLTemplate, "nano"))
	assert.Equal(t, "git@example.com:pkgs/nano", PackageURL("git@example.com:pkgs/{name}", "nano"))
}
