package packaging

import (
	"testing"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nanoSpec = `name       : nano
version    : '7.2'
release    : 5
source     :
    - https://www.nano-editor.org/dist/v7/nano-7.2.tar.xz : 86f3442768bd2873cec693f83cdf80b4b444ad3cc14760b74361474fc87a4526
homepage   : https://www.nano-editor.org/
license    : GPL-3.0-or-later
component  : system.utils
summary    : Small, friendly text editor
description: |
    GNU nano is an easy-to-use text editor.
`

func TestReadPackageSpec(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile("/pkg/package.yml", []byte(nanoSpec), 0644))

	spec, err := ReadPackageSpec(fsys, "/pkg/package.yml")
	require.NoError(t, err)

	assert.Equal(t, "nano", spec.Name)
	assert.Equal(t, "7.2", spec.Version)
	assert.Equal(t, 5, spec.Release)
	assert.Equal(t, []string{"https://www.nano-editor.org/dist/v7/nano-7.2.tar.xz"}, spec.SourceURLs())
	assert.Equal(t, []string{"GPL-3.0-or-later"}, []string(spec.License))
	assert.Equal(t, []string{"system.utils"}, []string(spec.Component))
	assert.Equal(t, "GNU nano is an easy-to-use text editor.\n", spec.Description)
}

func TestReadPackageSpecLicenseList(t *testing.T) {
	fsys := filesystem.NewMemory()
	content := "name: foo\nversion: 1.0\nrelease: 1\nlicense:\n    - MIT\n    - Apache-2.0\n"
	require.NoError(t, fsys.WriteFile("/pkg/package.yml", []byte(content), 0644))

	spec, err := ReadPackageSpec(fsys, "/pkg/package.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"MIT", "Apache-2.0"}, []string(spec.License))
	assert.Equal(t, "1.0", spec.Version)
}

func TestReadPackageSpecErrors(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile("/pkg/package.yml", []byte("name: [unclosed\n"), 0644))

	_, err := ReadPackageSpec(fsys, "/pkg/package.yml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = ReadPackageSpec(fsys, "/pkg/missing.yml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}
