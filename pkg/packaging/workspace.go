package packaging

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
)

// DefaultCommonDir is the shared directory every packaging root holds.
const DefaultCommonDir = "common"

// CheckRoot verifies that root is a packaging root.
func CheckRoot(fsys filesystem.FS, root, commonDir string) error {
	if commonDir == "" {
		commonDir = DefaultCommonDir
	}
	common := filepath.Join(root, commonDir)

	info, err := fsys.Stat(common)
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Newf(errors.ErrPrecondition, "not in packaging root directory: '%s' not found", commonDir).
			WithDetail("path", root)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to check for %s", common).
			WithDetail("path", common)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrPrecondition, "not in packaging root directory: '%s' is not a directory", commonDir).
			WithDetail("path", root)
	}
	return nil
}

// ValidateName rejects names that cannot be used as a package directory.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrInvalidInput, "package name must not be empty")
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidInput, "invalid package name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Newf(errors.ErrInvalidInput, "package name %q must not contain a path separator", name)
	case strings.HasPrefix(name, "-"):
		return errors.Newf(errors.ErrInvalidInput, "package name %q must not start with '-'", name)
	}
	return nil
}

// PackageURL expands {name} in template.
func PackageURL(template, name string) string {
	return strings.ReplaceAll(template, "{name}", name)
}
