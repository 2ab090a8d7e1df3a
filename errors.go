// Package platformfile provides sentinel errors for file-handle operations.
// All errors can be checked using errors.Is() for programmatic handling.
package platformfile

import (
	"errors"
	"fmt"
)

// Common sentinel errors that can be checked with errors.Is().
// Host filesystem errors are never wrapped in these; they propagate
// unmodified from the filesystem layer.

// ErrPathUnavailable is returned by Path when the handle is a web handle.
// Web runtimes expose picked files as in-memory data only, so there is no
// filesystem path to hand out. It signals a caller logic error, not a
// transient condition.
var ErrPathUnavailable = errors.New("path is not available on web platforms")

// ErrNoSource is returned by Copy and Open when the handle carries no data
// source at all, meaning no usable path, no byte slice, and no stream.
// Retrying cannot succeed without constructing a new handle.
var ErrNoSource = errors.New("file handle carries no data source")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
