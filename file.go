// Package platformfile provides the cross-platform file handle and its
// accessors.
package platformfile

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	billyfs "github.com/input-output-hk/catalyst-forge-libs/fs/billy"
)

// File is a platform-agnostic handle to a single picked file. It carries up
// to three alternative content sources (a filesystem path, an in-memory
// byte slice, and a lazy byte stream) and resolves between them with a
// fixed priority whenever content is needed: path first, then bytes, then
// stream.
//
// A File is immutable after construction: build it with New, FromMap, or
// FromJSON and only read it afterwards. Reads need no synchronization; the
// stream is the one exception, being single-pass and unguarded.
//
// The zero value is not useful.
type File struct {
	name       string
	size       int64
	path       string
	bytes      []byte
	stream     io.Reader
	identifier string
	web        bool

	// fsys is the filesystem all existence checks and copies go through.
	fsys   fs.Filesystem
	logger *slog.Logger
}

// New creates a file handle with the given display name and declared size.
// Content sources and platform hints are supplied via options.
//
// Example:
//
//	f := platformfile.New("report.pdf", int64(len(data)),
//	    platformfile.WithBytes(data),
//	)
func New(name string, size int64, opts ...Option) *File {
	f := &File{
		name: name,
		size: size,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.fsys == nil {
		f.fsys = billyfs.NewBaseOSFS()
	}
	return f
}

// Name returns the file name, including its extension.
func (f *File) Name() string {
	return f.name
}

// Size returns the declared size in bytes. The value is taken on trust from
// whoever constructed the handle and is never verified against a source.
func (f *File) Size() int64 {
	return f.size
}

// Bytes returns the in-memory content, or nil when the handle carries none.
// The returned slice is the stored one, not a copy.
func (f *File) Bytes() []byte {
	return f.bytes
}

// Stream returns the lazy byte stream, or nil when the handle carries none.
// The stream is single-pass: once consumed, whether by Copy, Open, or the
// caller directly, it does not rewind.
//
//nolint:ireturn // the stored source is an io.Reader by nature.
func (f *File) Stream() io.Reader {
	return f.stream
}

// Identifier returns the opaque platform identifier, or "" when absent.
func (f *File) Identifier() string {
	return f.identifier
}

// IsWeb reports whether the handle originates from a runtime without an
// addressable filesystem.
func (f *File) IsWeb() bool {
	return f.web
}

// Path returns the filesystem path backing the handle, or "" when no path
// was stored. On web handles it fails with ErrPathUnavailable instead of
// returning the stored value: a path captured on the web side must never be
// dereferenced, so the accessor refuses to hand it out.
func (f *File) Path() (string, error) {
	if f.web {
		return "", WrapErrorf(ErrPathUnavailable,
			"platform file %q: web runtimes keep picked files in memory, read Bytes or Stream instead", f.name)
	}
	return f.path, nil
}

// Extension returns the substring of the name after the last dot. A name
// without a dot degenerates to the whole name; callers that care must check
// for the dot themselves.
func (f *File) Extension() string {
	if i := strings.LastIndexByte(f.name, '.'); i >= 0 {
		return f.name[i+1:]
	}
	return f.name
}

// String renders a short display form. It reports which source the handle
// would resolve to and never dereferences one, so it is safe on any handle.
func (f *File) String() string {
	return fmt.Sprintf("File(name=%s, size=%d, source=%s)", f.name, f.size, f.resolveSource(true))
}
