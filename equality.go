// Package platformfile provides the equality and hashing contract for file
// handles.
package platformfile

import (
	"bytes"
	"encoding/binary"
	"io"
	"reflect"

	"github.com/zeebo/xxh3"
)

// Equal reports whether two handles describe the same logical file.
//
// Web handles compare without their paths, since the accessor refuses to
// hand those out, and a web handle never equals a non-web one. Byte content
// compares by value with the nil/non-nil distinction preserved, so two
// equal handles always agree on Exists. Streams compare by identity: a
// possibly consumed stream has no stable content to compare. A reader whose
// dynamic type is not comparable has no identity and never compares equal.
func (f *File) Equal(other *File) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	if f.web != other.web {
		return false
	}
	if !f.web && f.path != other.path {
		return false
	}
	if (f.bytes == nil) != (other.bytes == nil) {
		return false
	}
	return f.name == other.name &&
		f.size == other.size &&
		f.identifier == other.identifier &&
		bytes.Equal(f.bytes, other.bytes) &&
		streamsEqual(f.stream, other.stream)
}

// streamsEqual compares two streams by identity. Comparing interfaces with
// == panics when both carry the same uncomparable dynamic type, so the
// comparison runs only for matching comparable types; everything else is
// unequal.
func streamsEqual(a, b io.Reader) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Hash returns a 64-bit hash consistent with Equal: equal handles hash
// equal. Web handles all hash to 0, mirroring the path exclusion in Equal;
// callers bucketing web handles should expect the collision. The stream
// does not contribute, which is sound because Equal already requires the
// same stream object on both sides.
func (f *File) Hash() uint64 {
	if f.web {
		return 0
	}

	h := xxh3.New()
	hashString(h, f.name)
	hashString(h, f.path)
	hashString(h, f.identifier)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(f.size))
	_, _ = h.Write(buf[:])

	if f.bytes == nil {
		_, _ = h.Write([]byte{0})
	} else {
		_, _ = h.Write([]byte{1})
		_, _ = h.Write(f.bytes)
	}

	return h.Sum64()
}

// hashString feeds a length-prefixed string to the hasher so adjacent
// fields cannot collide into each other.
func hashString(h *xxh3.Hasher, s string) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
	_, _ = h.Write(buf[:])
	_, _ = h.WriteString(s)
}
