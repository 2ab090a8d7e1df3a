// Package platformfile provides file-handle construction options.
// This file contains functional options for configuration.
package platformfile

import (
	"io"
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// Option is a functional option applied to a File under construction.
// Options have no effect after New or FromMap returns.
type Option func(*File)

// WithPath records the filesystem path where the file's content lives.
// The path participates in source resolution only on non-web handles.
func WithPath(path string) Option {
	return func(f *File) {
		f.path = path
	}
}

// WithBytes records the file's content as an in-memory byte slice.
// A non-nil empty slice counts as a present, empty source; nil means the
// source is absent. The slice is not copied.
func WithBytes(data []byte) Option {
	return func(f *File) {
		f.bytes = data
	}
}

// WithStream records a lazy byte stream as a content source. The stream is
// single-pass: it is consumed at most once, by whichever operation selects
// it, and does not rewind.
func WithStream(r io.Reader) Option {
	return func(f *File) {
		f.stream = r
	}
}

// WithIdentifier records the opaque platform identifier for the file, such
// as a content URI on Android or a security-scoped bookmark on iOS. The
// identifier is carried verbatim and never treated as a path.
func WithIdentifier(id string) Option {
	return func(f *File) {
		f.identifier = id
	}
}

// ForWeb marks the handle as originating from a web runtime. Web handles
// have no addressable filesystem: Path fails with ErrPathUnavailable and
// source resolution skips straight to the in-memory sources.
func ForWeb() Option {
	return func(f *File) {
		f.web = true
	}
}

// WithFilesystem sets a custom filesystem implementation for existence
// checks and copies. This allows using in-memory filesystems for testing or
// virtual filesystems. If not specified, the handle uses the OS filesystem.
func WithFilesystem(fsys fs.Filesystem) Option {
	return func(f *File) {
		f.fsys = fsys
	}
}

// WithLogger configures the handle with a logger for source-resolution
// telemetry, such as a stored path being skipped because the file vanished.
// If logger is nil, logging is disabled (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(f *File) {
		f.logger = logger
	}
}
