package platformfile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billyfs "github.com/input-output-hk/catalyst-forge-libs/fs/billy"
)

// TestAccessors tests that constructed fields read back unchanged.
func TestAccessors(t *testing.T) {
	stream := strings.NewReader("data")
	f := New("photo.jpg", 1024,
		WithPath("/dcim/photo.jpg"),
		WithBytes([]byte("data")),
		WithStream(stream),
		WithIdentifier("content://media/42"),
	)

	assert.Equal(t, "photo.jpg", f.Name())
	assert.EqualValues(t, 1024, f.Size())
	assert.Equal(t, []byte("data"), f.Bytes())
	assert.Equal(t, "content://media/42", f.Identifier())
	assert.False(t, f.IsWeb())

	r := f.Stream()
	require.NotNil(t, r)
	assert.Equal(t, stream, r)

	p, err := f.Path()
	require.NoError(t, err)
	assert.Equal(t, "/dcim/photo.jpg", p)
}

// TestNewDefaultsToOSFilesystem tests that a handle without an injected
// filesystem still gets one.
func TestNewDefaultsToOSFilesystem(t *testing.T) {
	f := New("a.txt", 5)
	assert.NotNil(t, f.fsys)
}

// TestPath tests the guarded path accessor across platform flags.
func TestPath(t *testing.T) {
	tests := []struct {
		name    string
		file    *File
		want    string
		wantErr error
	}{
		{
			name: "non-web with stored path",
			file: New("a.txt", 5, WithPath("/in/a.txt")),
			want: "/in/a.txt",
		},
		{
			name: "non-web without path",
			file: New("a.txt", 5, WithBytes([]byte("hello"))),
			want: "",
		},
		{
			name:    "web handle refuses",
			file:    New("w.txt", 3, WithBytes([]byte{1, 2, 3}), ForWeb()),
			wantErr: ErrPathUnavailable,
		},
		{
			name:    "web handle refuses even with stored path",
			file:    New("w.txt", 3, WithPath("/in/w.txt"), ForWeb()),
			wantErr: ErrPathUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.file.Path()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "read Bytes or Stream instead")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

// TestExtension tests extension derivation from the name.
func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "simple extension", file: "report.pdf", want: "pdf"},
		{name: "double extension takes last", file: "archive.tar.gz", want: "gz"},
		{name: "dotfile", file: ".gitignore", want: "gitignore"},
		{name: "trailing dot", file: "weird.", want: ""},
		{name: "no dot degenerates to whole name", file: "README", want: "README"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.file, 0)
			assert.Equal(t, tt.want, f.Extension())
		})
	}
}

// TestString tests the display form, including that it stays safe on web
// handles where the path accessor would fail.
func TestString(t *testing.T) {
	tests := []struct {
		name string
		file *File
		want string
	}{
		{
			name: "bytes handle",
			file: New("a.txt", 5, WithBytes([]byte("hello"))),
			want: "File(name=a.txt, size=5, source=bytes)",
		},
		{
			name: "path handle",
			file: New("a.txt", 5, WithPath("/in/a.txt"), WithBytes([]byte("hello"))),
			want: "File(name=a.txt, size=5, source=path)",
		},
		{
			name: "web handle with only a path has no usable source",
			file: New("w.txt", 3, WithPath("/in/w.txt"), ForWeb()),
			want: "File(name=w.txt, size=3, source=none)",
		},
		{
			name: "empty handle",
			file: New("x", 0),
			want: "File(name=x, size=0, source=none)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.file.String())
		})
	}
}

// TestDiskPickLifecycle tests the end-to-end behavior of a desktop-style
// handle backed by a real path.
func TestDiskPickLifecycle(t *testing.T) {
	ctx := context.Background()
	fsys := billyfs.NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("/in/a.txt", []byte("hello"), 0o644))

	f := New("a.txt", 5, WithPath("/in/a.txt"), WithFilesystem(fsys))

	p, err := f.Path()
	require.NoError(t, err)
	assert.Equal(t, "/in/a.txt", p)

	ok, err := f.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ref, err := f.Copy(ctx, "/out/a.txt")
	require.NoError(t, err)

	got, err := ref.ReadFile()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

// TestBytesPickLifecycle tests the end-to-end behavior of a handle whose
// only source is an in-memory byte slice.
func TestBytesPickLifecycle(t *testing.T) {
	ctx := context.Background()
	fsys := billyfs.NewInMemoryFS()

	f := New("a.txt", 5,
		WithBytes([]byte{72, 101, 108, 108, 111}),
		WithFilesystem(fsys),
	)

	ok, err := f.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ref, err := f.Copy(ctx, "out/a.txt")
	require.NoError(t, err)

	got, err := ref.ReadFile()
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), got)

	ok, err = fsys.Exists("out")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestWebPickLifecycle tests the end-to-end behavior of a browser-style
// handle that only carries bytes.
func TestWebPickLifecycle(t *testing.T) {
	ctx := context.Background()
	fsys := billyfs.NewInMemoryFS()

	f := New("w.txt", 3, WithBytes([]byte{1, 2, 3}), ForWeb(), WithFilesystem(fsys))

	_, err := f.Path()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathUnavailable))

	ok, err := f.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ref, err := f.Copy(ctx, "/out/w.txt")
	require.NoError(t, err)

	got, err := ref.ReadFile()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	assert.EqualValues(t, 0, f.Hash())
}
