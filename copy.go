// Package platformfile provides copy operations for file handles.
package platformfile

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
)

// copyChunkSize is the buffer size for draining a stream into a target.
const copyChunkSize = 32 * 1024

// Copy materializes the handle's content at targetPath on the handle's
// filesystem and returns a reference to the written file.
//
// The parent directory chain of targetPath is created first; an already
// existing chain is fine. The content source is chosen by the fixed
// priority path, bytes, stream. A stored path whose file has vanished is
// skipped in favor of the in-memory sources rather than failing the copy.
// When no source is usable at all, Copy fails with ErrNoSource.
//
// Copying from a stream consumes it: a second Copy from a stream-only
// handle writes whatever the reader has left, typically nothing, and that
// is not an error. Filesystem failures propagate unmodified; there is no
// retry or rollback, so a failed copy may leave a partial target behind.
func (f *File) Copy(ctx context.Context, targetPath string) (*Ref, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := f.chooseSource(ctx)
	if err != nil {
		return nil, err
	}
	if src == sourceNone {
		return nil, WrapErrorf(ErrNoSource, "copy %q to %q", f.name, targetPath)
	}

	if err := f.fsys.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return nil, err
	}

	if f.logger != nil {
		f.logger.DebugContext(ctx, "copying platform file",
			slog.String("name", f.name),
			slog.String("target", targetPath),
			slog.String("source", src.String()),
		)
	}

	switch src {
	case sourcePath:
		err = f.copyFromPath(targetPath)
	case sourceBytes:
		err = f.fsys.WriteFile(targetPath, f.bytes, 0o644)
	case sourceStream:
		err = f.copyFromStream(ctx, targetPath)
	}
	if err != nil {
		return nil, err
	}

	return &Ref{fsys: f.fsys, path: targetPath}, nil
}

// copyFromPath streams the source file into the target, delegating
// buffering to io.Copy. Both ends close on every exit path; a close failure
// surfaces only when nothing else already failed.
func (f *File) copyFromPath(targetPath string) (err error) {
	src, err := f.fsys.Open(f.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	dst, err := f.fsys.Create(targetPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(dst, src)
	return err
}

// copyFromStream drains the handle's stream into the target chunk by
// chunk, honoring context cancellation between chunks. The sink closes on
// every exit path.
func (f *File) copyFromStream(ctx context.Context, targetPath string) (err error) {
	dst, err := f.fsys.Create(targetPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	buf := make([]byte, copyChunkSize)
	for {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		n, rerr := f.stream.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}
