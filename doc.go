// Package platformfile provides a cross-platform value object for picked
// files.
//
// A picked file looks different on every platform: desktop pickers yield a
// filesystem path, web pickers yield bytes or a lazy stream held by the
// browser, and mobile pickers may add an opaque identifier on top. File
// papers over the difference with one handle that carries whichever sources
// exist and resolves between them with a fixed priority (path, then bytes,
// then stream) whenever content is needed.
//
// # Design Principles
//
// The package follows these core principles:
//   - One resolution policy - Exists, Copy, and Open share a single source
//     ladder, so they can never disagree about which source is authoritative
//   - Testability by construction - all I/O goes through the project's
//     filesystem abstraction, so in-memory backends drop in
//   - Immutable handles - built once, then only read; no locks needed
//   - Go idioms - accepts interfaces, returns concrete types
//
// # Basic Usage
//
// Build a handle from whatever the picker produced and copy it somewhere
// durable:
//
//	import (
//	    "context"
//
//	    "github.com/input-output-hk/catalyst-forge-libs/platformfile"
//	)
//
//	f := platformfile.New("report.pdf", int64(len(data)),
//	    platformfile.WithBytes(data),
//	)
//
//	ref, err := f.Copy(context.Background(), "/srv/uploads/report.pdf")
//	if err != nil {
//	    return err
//	}
//	content, err := ref.ReadFile()
//
// Copy creates missing parent directories, picks the highest-priority
// source that is actually usable, and returns a reference to the written
// file. A handle with no source at all fails with ErrNoSource.
//
// # Web Handles
//
// Handles marked with ForWeb never expose a filesystem path; browsers keep
// picked files in memory. Path fails with ErrPathUnavailable, and source
// resolution skips straight to bytes and stream:
//
//	w := platformfile.New("avatar.png", 512,
//	    platformfile.WithBytes(img),
//	    platformfile.ForWeb(),
//	)
//
//	if _, err := w.Path(); errors.Is(err, platformfile.ErrPathUnavailable) {
//	    // read w.Bytes() instead
//	}
//
// # Streams
//
// A stream source is single-pass. Copy and Open consume it; a second Copy
// from a stream-only handle writes whatever the reader has left, typically
// nothing, and that is not an error. Callers that need the content twice
// should copy once and read the target thereafter.
//
// # Descriptor Maps and JSON
//
// Handles travel across process boundaries as loosely-typed descriptor
// maps or JSON. FromMap and FromJSON rebuild a handle from either shape,
// with the stream supplied out of band; ToMap and MarshalJSON are the
// inverses. Neither encoding carries a web handle's path.
//
// # Filesystems
//
// By default a handle talks to the OS filesystem. Tests and virtual setups
// inject their own backend:
//
//	billyfs "github.com/input-output-hk/catalyst-forge-libs/fs/billy"
//
//	memfs := billyfs.NewInMemoryFS()
//	f := platformfile.New("a.txt", 5,
//	    platformfile.WithPath("/in/a.txt"),
//	    platformfile.WithFilesystem(memfs),
//	)
//
// Filesystem errors propagate unmodified; the package adds no retry,
// rollback, or partial-copy recovery on top of the backend's behavior.
package platformfile
