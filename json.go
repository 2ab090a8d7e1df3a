package platformfile

import (
	"encoding/json"
	"io"
)

// fileJSON is the serialized shape of a handle. Field names match the
// descriptor map keys so the two encodings stay interchangeable.
type fileJSON struct {
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	Size       int64  `json:"size"`
	Bytes      []byte `json:"bytes"`
	Identifier string `json:"identifier,omitempty"`
	IsWeb      bool   `json:"isWeb,omitempty"`
}

// MarshalJSON implements json.Marshaler. The stream never serializes, and
// web handles omit the path, matching ToMap. Bytes carry no omitempty so a
// nil slice (null) and a present empty slice ("") survive a round trip, a
// distinction Exists depends on.
func (f *File) MarshalJSON() ([]byte, error) {
	out := fileJSON{
		Name:       f.name,
		Size:       f.size,
		Bytes:      f.bytes,
		Identifier: f.identifier,
		IsWeb:      f.web,
	}
	if !f.web {
		out.Path = f.path
	}
	return json.Marshal(out)
}

// FromJSON builds a handle from its serialized form. As with FromMap, the
// stream travels out of band and options apply after the decoded fields.
func FromJSON(data []byte, stream io.Reader, opts ...Option) (*File, error) {
	var in fileJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, WrapError(err, "decode file descriptor")
	}

	all := make([]Option, 0, len(opts)+5)
	all = append(all,
		WithPath(in.Path),
		WithBytes(in.Bytes),
		WithStream(stream),
		WithIdentifier(in.Identifier),
	)
	if in.IsWeb {
		all = append(all, ForWeb())
	}
	all = append(all, opts...)

	return New(in.Name, in.Size, all...), nil
}
