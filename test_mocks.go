package platformfile

import (
	"errors"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// errBoom is the generic failure injected by the hook filesystem.
var errBoom = errors.New("boom")

// hookFS wraps a real Filesystem and lets tests fail or observe individual
// calls. Unset hooks delegate to the wrapped implementation.
type hookFS struct {
	fs.Filesystem

	existsFn func(path string) (bool, error)
	createFn func(name string) (fs.File, error)
	mkdirFn  func(path string) error
	writeFn  func(filename string, data []byte) error
}

func (h *hookFS) Exists(path string) (bool, error) {
	if h.existsFn != nil {
		return h.existsFn(path)
	}
	return h.Filesystem.Exists(path)
}

//nolint:ireturn // mock implementations return interfaces
func (h *hookFS) Create(name string) (fs.File, error) {
	if h.createFn != nil {
		return h.createFn(name)
	}
	return h.Filesystem.Create(name)
}

func (h *hookFS) MkdirAll(path string, perm os.FileMode) error {
	if h.mkdirFn != nil {
		return h.mkdirFn(path)
	}
	return h.Filesystem.MkdirAll(path, perm)
}

func (h *hookFS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if h.writeFn != nil {
		return h.writeFn(filename, data)
	}
	return h.Filesystem.WriteFile(filename, data, perm)
}

// recordFile wraps fs.File and records whether Close was called.
type recordFile struct {
	fs.File
	closed *bool
}

func (r *recordFile) Close() error {
	*r.closed = true
	return r.File.Close()
}

// failWriteFile rejects every write while still delegating Close, so tests
// can prove the sink is released on the failure path.
type failWriteFile struct {
	fs.File
}

func (w *failWriteFile) Write(p []byte) (int, error) {
	return 0, errBoom
}

// failCloseFile accepts writes but fails on Close.
type failCloseFile struct {
	fs.File
}

func (c *failCloseFile) Close() error {
	_ = c.File.Close()
	return errBoom
}
