package platformfile

// Result groups the handles produced by one pick interaction.
type Result struct {
	files []*File
}

// NewResult wraps picked file handles in a Result, preserving pick order.
func NewResult(files ...*File) *Result {
	return &Result{files: files}
}

// Files returns the picked handles in pick order.
func (r *Result) Files() []*File {
	return r.files
}

// Len returns the number of picked handles.
func (r *Result) Len() int {
	return len(r.files)
}

// IsSinglePick reports whether exactly one file was picked.
func (r *Result) IsSinglePick() bool {
	return len(r.files) == 1
}

// Names returns the display names of the picked handles, in order.
func (r *Result) Names() []string {
	names := make([]string, len(r.files))
	for i, f := range r.files {
		names[i] = f.Name()
	}
	return names
}

// Paths returns the filesystem paths of the picked handles, in order. It
// fails with ErrPathUnavailable as soon as any handle is a web handle, the
// same way the handle's own accessor does.
func (r *Result) Paths() ([]string, error) {
	paths := make([]string, len(r.files))
	for i, f := range r.files {
		p, err := f.Path()
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}
	return paths, nil
}
