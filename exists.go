package platformfile

import "context"

// Exists reports whether the handle's content is reachable right now.
//
// Resolution follows the fixed source priority. A non-web handle with a
// stored path answers with the filesystem check alone and never falls
// through, so it is the one case that can report false while bytes or a
// stream are still present. In-memory sources answer true without being
// consumed; an empty non-nil byte slice still counts as present. A handle
// with no source at all answers false.
//
// Failures from the filesystem existence check propagate unmodified.
func (f *File) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	switch f.resolveSource(true) {
	case sourcePath:
		return f.fsys.Exists(f.path)
	case sourceBytes, sourceStream:
		return true, nil
	default:
		return false, nil
	}
}
