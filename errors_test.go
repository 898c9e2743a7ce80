package stash

import (
	"errors"
	"testing"
)

func TestTypeError_Is(t *testing.T) {
	err := &TypeError{Name: "obj", Expected: []string{"string"}, Got: "int", Index: -1}

	if !errors.Is(err, ErrTypeMismatch) {
		t.Error("TypeError should unwrap to ErrTypeMismatch")
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("TypeError should not match ErrMalformed")
	}
}

func TestTypeError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *TypeError
		want string
	}{
		{
			name: "single type",
			err:  &TypeError{Name: "file", Expected: []string{"string"}, Got: "int", Index: -1},
			want: "file must be string, got int",
		},
		{
			name: "alternatives",
			err:  &TypeError{Name: "file", Expected: []string{"string", "float64"}, Got: "int", Index: -1},
			want: "file must be string or float64, got int",
		},
		{
			name: "not a list",
			err:  &TypeError{Name: "lines", Expected: []string{"string"}, Got: "int", List: true, Index: -1},
			want: "lines must be a list, got int",
		},
		{
			name: "element",
			err:  &TypeError{Name: "lines", Expected: []string{"string"}, Got: "int", List: true, Index: 3},
			want: "lines must be list[string]; got int at index 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecError_Is(t *testing.T) {
	cause := errors.New("bad byte")
	err := newCodecError(ErrMalformed, "a.json", cause)

	if !errors.Is(err, ErrMalformed) {
		t.Error("CodecError should unwrap to ErrMalformed")
	}
	if !errors.Is(err, cause) {
		t.Error("CodecError should unwrap to its cause")
	}
	if errors.Is(err, ErrIncompatible) {
		t.Error("CodecError should not match ErrIncompatible")
	}
}

func TestCodecError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with cause",
			err:  newCodecError(ErrMalformed, "a.json", errors.New("unexpected EOF")),
			want: "a.json: malformed content: unexpected EOF",
		},
		{
			name: "without cause",
			err:  newCodecError(ErrMarshal, "b.bin", nil),
			want: "b.bin: marshal failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecError_As(t *testing.T) {
	err := newCodecError(ErrIncompatible, "c.bin", nil)

	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As should find CodecError")
	}
	if ce.Path != "c.bin" || ce.Err != ErrIncompatible {
		t.Errorf("CodecError = %+v", ce)
	}
}
