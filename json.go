package stash

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// ReadJSON decodes the JSON object stored at path. A document whose top
// level is not an object fails with ErrMalformed. Integral numbers decode
// as int64, all others as float64.
func ReadJSON(path string) (map[string]any, error) {
	return readFile(FormatJSON, path, func(data []byte) (map[string]any, int, error) {
		v, err := decodeJSON(data)
		if err != nil {
			return nil, 0, newCodecError(ErrMalformed, path, err)
		}
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, 0, newCodecError(ErrMalformed, path,
				fmt.Errorf("top-level value must be an object, got %s", jsonKind(v)))
		}
		return obj, 1, nil
	})
}

// WriteJSON writes obj to path as a JSON object indented by four spaces
// and followed by a newline. Non-ASCII text is written literally.
// obj must be a map with string keys or a struct.
//
// An existing file is left untouched unless Force is given; obj is only
// checked when the write goes ahead.
func WriteJSON(obj any, path string, opts ...Option) error {
	return writeFile(FormatJSON, path, newOptions(opts), func() ([]byte, error) {
		if err := checkMapping(obj, "obj"); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		if err := enc.Encode(obj); err != nil {
			return nil, newCodecError(ErrMarshal, path, err)
		}
		return unescapeSeparators(buf.Bytes()), nil
	})
}

// encodeCompact encodes v as a single JSON line terminated by '\n'.
func encodeCompact(buf *bytes.Buffer, v any) error {
	var line bytes.Buffer
	enc := json.NewEncoder(&line)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(unescapeSeparators(line.Bytes()))
	return nil
}

// decodeJSON decodes exactly one JSON value from data.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return convertNumbers(v), nil
}

// convertNumbers replaces json.Number in place: int64 when the literal is
// an integer that fits, float64 otherwise.
func convertNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, e := range t {
			t[k] = convertNumbers(e)
		}
	case []any:
		for i, e := range t {
			t[i] = convertNumbers(e)
		}
	}
	return v
}

// unescapeSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into literal runes. An escape preceded by an odd run
// of backslashes is text, not an escape, and is kept.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	slashes := 0
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == '\\' && slashes%2 == 0 && i+6 <= len(b) &&
			string(b[i+1:i+5]) == "u202" && (b[i+5] == '8' || b[i+5] == '9') {
			if b[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			slashes = 0
			continue
		}
		if c == '\\' {
			slashes++
		} else {
			slashes = 0
		}
		out = append(out, c)
	}
	return out
}

// jsonKind names a decoded JSON value for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case int64, float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return typeName(v)
	}
}
