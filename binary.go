package stash

import (
	"errors"
	"fmt"
	"reflect"
)

var errNotPointer = errors.New("load target must be a non-nil pointer")

// Save encodes obj with the configured codec (MessagePack by default)
// and writes it to path inside a checksummed envelope. obj may be any
// value the codec supports. With WithEncryptor the payload is sealed and
// bound to the envelope header, so a rewritten header fails to open.
//
// The file is replaced atomically. An existing file is left untouched
// unless Force is given.
func Save(obj any, path string, opts ...Option) error {
	o := newOptions(opts)
	return writeFile(FormatBinary, path, o, func() ([]byte, error) {
		payload, err := o.codec.Marshal(obj)
		if err != nil {
			return nil, newCodecError(ErrMarshal, path, err)
		}
		sealed := o.encryptor != nil
		header, err := envelopeHeader(o.codec.ContentType(), sealed)
		if err != nil {
			return nil, newCodecError(ErrMarshal, path, err)
		}
		if sealed {
			payload, err = o.encryptor.Seal(payload, header)
			if err != nil {
				return nil, newCodecError(ErrMarshal, path, err)
			}
		}
		return encodeEnvelope(header, payload), nil
	})
}

// Load decodes the file at path into v, which must be a non-nil pointer.
// Files written by another codec, another envelope version, or sealed
// without a matching WithEncryptor fail with ErrIncompatible; corrupt
// files fail with ErrMalformed.
func Load(path string, v any, opts ...Option) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &TypeError{
			Name:     "v",
			Expected: []string{"non-nil pointer"},
			Got:      typeName(v),
			Index:    -1,
		}
	}
	o := newOptions(opts)

	_, err := readFile(FormatBinary, path, func(data []byte) (struct{}, int, error) {
		env, err := decodeEnvelope(path, data)
		if err != nil {
			return struct{}{}, 0, err
		}
		if env.contentType != o.codec.ContentType() {
			return struct{}{}, 0, newCodecError(ErrIncompatible, path,
				fmt.Errorf("written as %s, reading as %s", env.contentType, o.codec.ContentType()))
		}

		payload := env.payload
		switch {
		case env.sealed && o.encryptor == nil:
			return struct{}{}, 0, newCodecError(ErrIncompatible, path, errors.New("payload is sealed, no encryptor given"))
		case !env.sealed && o.encryptor != nil:
			return struct{}{}, 0, newCodecError(ErrIncompatible, path, errors.New("payload is not sealed"))
		case env.sealed:
			payload, err = o.encryptor.Open(payload, env.header)
			if err != nil {
				return struct{}{}, 0, newCodecError(ErrMalformed, path, err)
			}
		}

		if err := o.codec.Unmarshal(payload, v); err != nil {
			return struct{}{}, 0, newCodecError(ErrMalformed, path, err)
		}
		return struct{}{}, 1, nil
	})
	return err
}

// LoadAs is the generic form of Load.
func LoadAs[T any](path string, opts ...Option) (T, error) {
	var v T
	if err := Load(path, &v, opts...); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
