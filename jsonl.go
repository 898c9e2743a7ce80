package stash

import (
	"bytes"
	"fmt"
)

// ReadJSONL decodes path as a stream of JSON objects, one per line.
// Blank lines are skipped. A line that is not valid JSON fails with
// ErrMalformed; a line holding anything but an object fails with a
// *TypeError naming the line. Numbers decode as in ReadJSON.
func ReadJSONL(path string) ([]map[string]any, error) {
	return readFile(FormatJSONL, path, func(data []byte) ([]map[string]any, int, error) {
		records := []map[string]any{}
		for i, raw := range bytes.Split(data, []byte("\n")) {
			line := bytes.TrimSpace(raw)
			if len(line) == 0 {
				continue
			}
			v, err := decodeJSON(line)
			if err != nil {
				return nil, 0, newCodecError(ErrMalformed, path, fmt.Errorf("line %d: %w", i+1, err))
			}
			rec, ok := v.(map[string]any)
			if !ok {
				return nil, 0, &TypeError{
					Name:     fmt.Sprintf("%s line %d", path, i+1),
					Expected: []string{"object"},
					Got:      jsonKind(v),
					Index:    -1,
				}
			}
			records = append(records, rec)
		}
		return records, len(records), nil
	})
}

// WriteJSONL writes records to path as compact JSON, one object per line.
// records is a single mapping, written as a one-line stream, or a list of
// mappings. A list element that is not a mapping fails with a *TypeError
// citing its index.
//
// An existing file is left untouched unless Force is given.
func WriteJSONL(records any, path string, opts ...Option) error {
	stream, err := normalizeRecords(records, "records")
	if err != nil {
		return err
	}
	return writeFile(FormatJSONL, path, newOptions(opts), func() ([]byte, error) {
		return encodeRecords(path, stream)
	})
}

// AppendJSONL adds records to the end of path, creating the file and its
// parent directory when absent. records follows the WriteJSONL rules.
func AppendJSONL(records any, path string) error {
	stream, err := normalizeRecords(records, "records")
	if err != nil {
		return err
	}
	data, err := encodeRecords(path, stream)
	if err != nil {
		return err
	}
	return appendData(FormatJSONL, path, len(stream), data)
}

func encodeRecords(path string, stream []any) ([]byte, error) {
	var buf bytes.Buffer
	for i, rec := range stream {
		if err := encodeCompact(&buf, rec); err != nil {
			return nil, newCodecError(ErrMarshal, path, fmt.Errorf("record %d: %w", i, err))
		}
	}
	return buf.Bytes(), nil
}
