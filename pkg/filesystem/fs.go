package filesystem

import (
	"io/fs"
)

// FS is the set of filesystem operations the repository and packaging
// workflows need.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	Mkdir(path string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error

	// CopyFile copies src to dst, replacing dst if it exists, and sets the
	// mode of dst to perm.
	CopyFile(src, dst string, perm fs.FileMode) error
}

// Exists reports whether name can be stat'ed.
func Exists(fsys FS, name string) (bool, error) {
	_, err := fsys.Stat(name)
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}
