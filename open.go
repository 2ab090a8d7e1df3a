package platformfile

import (
	"bytes"
	"context"
	"io"
)

// Open returns a reader over the handle's content, chosen by the same
// source policy as Copy. Path-backed handles open the file on the handle's
// filesystem; bytes-backed handles get a fresh reader over the stored
// slice; stream-backed handles hand out the single-pass stream itself,
// wrapped with a no-op Close when it is not already a Closer.
//
// When no source is usable, Open fails with ErrNoSource. Filesystem
// failures propagate unmodified. The caller owns the returned reader and
// must close it.
//
//nolint:ireturn // the concrete reader type varies by source.
func (f *File) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := f.chooseSource(ctx)
	if err != nil {
		return nil, err
	}

	switch src {
	case sourcePath:
		file, err := f.fsys.Open(f.path)
		if err != nil {
			return nil, err
		}
		return file, nil
	case sourceBytes:
		return io.NopCloser(bytes.NewReader(f.bytes)), nil
	case sourceStream:
		if rc, ok := f.stream.(io.ReadCloser); ok {
			return rc, nil
		}
		return io.NopCloser(f.stream), nil
	default:
		return nil, WrapErrorf(ErrNoSource, "open %q", f.name)
	}
}
