package platformfile

import (
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// Ref points at a file written by Copy. It pins the filesystem the copy
// went through, so reads via the reference hit the same backend even when
// the handle was wired to an in-memory filesystem.
type Ref struct {
	fsys fs.Filesystem
	path string
}

// Path returns the location the copy was written to.
func (r *Ref) Path() string {
	return r.path
}

// Exists reports whether the referenced file is still present.
func (r *Ref) Exists() (bool, error) {
	return r.fsys.Exists(r.path)
}

// Stat returns metadata for the referenced file.
func (r *Ref) Stat() (os.FileInfo, error) {
	return r.fsys.Stat(r.path)
}

// Open opens the referenced file for reading per the backend's default
// open semantics.
//
//nolint:ireturn // fs.File is the interface the filesystem API returns.
func (r *Ref) Open() (fs.File, error) {
	return r.fsys.Open(r.path)
}

// ReadFile reads the referenced file's entire contents.
func (r *Ref) ReadFile() ([]byte, error) {
	return r.fsys.ReadFile(r.path)
}
