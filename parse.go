// Package platformfile provides descriptor-map parsing and rendering.
package platformfile

import "io"

// FromMap builds a handle from a loosely-typed descriptor map, the shape
// handles travel in over platform channels. Recognized keys: "name",
// "path", "bytes", "size", "identifier", "isWeb"; a missing "isWeb"
// defaults to false. This is not a validating parser: missing or
// wrong-typed values degrade to zero values rather than failing.
//
// A stream cannot ride in a map, so it is supplied out of band; nil is
// fine. Options apply after the map fields, so WithFilesystem and
// WithLogger compose exactly as they do with New.
func FromMap(m map[string]any, stream io.Reader, opts ...Option) *File {
	name, _ := m["name"].(string)
	path, _ := m["path"].(string)
	data, _ := m["bytes"].([]byte)
	identifier, _ := m["identifier"].(string)
	web, _ := m["isWeb"].(bool)

	all := make([]Option, 0, len(opts)+5)
	all = append(all,
		WithPath(path),
		WithBytes(data),
		WithStream(stream),
		WithIdentifier(identifier),
	)
	if web {
		all = append(all, ForWeb())
	}
	all = append(all, opts...)

	return New(name, mapSize(m["size"]), all...)
}

// ToMap renders the handle as a descriptor map, the inverse of FromMap.
// The stream never rides in the map. Web handles omit the "path" key
// entirely so a path that must not be dereferenced cannot leak through the
// descriptor.
func (f *File) ToMap() map[string]any {
	m := map[string]any{
		"name":       f.name,
		"size":       f.size,
		"bytes":      f.bytes,
		"identifier": f.identifier,
		"isWeb":      f.web,
	}
	if !f.web {
		m["path"] = f.path
	}
	return m
}

// mapSize coerces the "size" value out of a descriptor map. Maps built in
// process carry int or int64; maps decoded from JSON arrive with float64.
func mapSize(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
