package stash

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
//
// A missing file on read is not wrapped: the *fs.PathError from the
// filesystem is returned as is, so errors.Is(err, fs.ErrNotExist) holds.
var (
	// ErrTypeMismatch indicates an argument or decoded value has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMalformed indicates file content is not valid for its format.
	ErrMalformed = errors.New("malformed content")

	// ErrIncompatible indicates a binary file was written by another
	// envelope version, another codec, or with encryption the reader lacks.
	ErrIncompatible = errors.New("incompatible payload")

	// ErrMarshal indicates the codec failed to encode a value.
	ErrMarshal = errors.New("marshal failed")
)

// TypeError describes a value that failed a type check.
// It always unwraps to ErrTypeMismatch.
type TypeError struct {
	Name     string   // Label of the checked value ("value" when none was given)
	Expected []string // Accepted type names
	Got      string   // Runtime type observed
	List     bool     // True when the check was for a list of Expected
	Index    int      // Offending element index, -1 when not an element failure
}

func (e *TypeError) Error() string {
	want := strings.Join(e.Expected, " or ")
	if e.Index >= 0 {
		return fmt.Sprintf("%s must be list[%s]; got %s at index %d", e.Name, want, e.Got, e.Index)
	}
	if e.List {
		return fmt.Sprintf("%s must be a list, got %s", e.Name, e.Got)
	}
	return fmt.Sprintf("%s must be %s, got %s", e.Name, want, e.Got)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

// CodecError represents an encode or decode failure for a file.
type CodecError struct {
	Err   error  // Underlying sentinel error (ErrMarshal, ErrMalformed, ErrIncompatible)
	Path  string // File being read or written
	Cause error  // Original error from the codec, may be nil
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err.Error())
}

func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, path string, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Path:  path,
		Cause: cause,
	}
}
