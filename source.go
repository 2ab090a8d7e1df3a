// Package platformfile provides the data-source resolution shared by all
// content operations.
package platformfile

import (
	"context"
	"log/slog"
)

// sourceKind identifies which of a handle's content sources an operation
// selected.
type sourceKind int

const (
	sourceNone sourceKind = iota
	sourcePath
	sourceBytes
	sourceStream
)

// String returns the label used in display forms and log attributes.
func (k sourceKind) String() string {
	switch k {
	case sourcePath:
		return "path"
	case sourceBytes:
		return "bytes"
	case sourceStream:
		return "stream"
	default:
		return "none"
	}
}

// resolveSource walks the fixed priority ladder (path, then bytes, then
// stream) and returns the authoritative source. Lower rungs are not
// inspected once a higher one matches. The path rung requires usablePath
// and a non-web handle; everything else is presence alone, so an empty
// non-nil byte slice still wins over a stream.
func (f *File) resolveSource(usablePath bool) sourceKind {
	switch {
	case usablePath && !f.web && f.path != "":
		return sourcePath
	case f.bytes != nil:
		return sourceBytes
	case f.stream != nil:
		return sourceStream
	default:
		return sourceNone
	}
}

// chooseSource resolves the source for content operations. It refines
// resolveSource with an existence check: a stored path whose file has
// vanished is demoted and the ladder re-runs over the in-memory sources.
// An existence-check failure propagates unmodified.
func (f *File) chooseSource(ctx context.Context) (sourceKind, error) {
	src := f.resolveSource(true)
	if src != sourcePath {
		return src, nil
	}
	ok, err := f.fsys.Exists(f.path)
	if err != nil {
		return sourceNone, err
	}
	if ok {
		return sourcePath, nil
	}
	if f.logger != nil {
		f.logger.WarnContext(ctx, "stored path no longer exists, falling back to in-memory sources",
			slog.String("name", f.name),
			slog.String("path", f.path),
		)
	}
	return f.resolveSource(false), nil
}
