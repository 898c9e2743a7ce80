// Package stash provides read, write and append helpers for files in four
// formats: plain text, JSON, line-delimited JSON and codec-serialized
// binary objects, plus YAML as a sibling of JSON.
//
// Every operation follows one policy. Arguments are type-checked before
// any I/O. Writers create missing parent directories. A write against an
// existing file is skipped unless Force is given; the skip is reported on
// the notice output, not returned as an error.
//
// # Operations
//
//	ReadFile, ReadLines, WriteFile, AppendFile   - text, '\n' terminated lines
//	ReadJSON, WriteJSON                          - one object, 4-space indent
//	ReadJSONL, WriteJSONL, AppendJSONL           - one compact object per line
//	ReadYAML, WriteYAML                          - one mapping
//	Load, LoadAs, Save                           - binary, MessagePack by default
//
// # Basic Usage
//
//	err := stash.WriteJSON(map[string]any{"name": "test", "value": 123}, "out/test.json")
//	obj, err := stash.ReadJSON("out/test.json")
//
//	_ = stash.AppendJSONL(map[string]any{"id": 1}, "log.jsonl")
//	_ = stash.AppendJSONL([]map[string]any{{"id": 2}, {"id": 3}}, "log.jsonl")
//	records, err := stash.ReadJSONL("log.jsonl")
//
// # Notices
//
// Writers print "[INFO] <path> already exists." on a skip and
// "[INFO] save to <path>" after writing, the latter suppressed by Silent.
// Notices go to standard output unless WithOutput is given.
//
// # Binary Files
//
// Save frames the codec payload with a header carrying a format version,
// the codec content type and a BLAKE2b checksum, and replaces the target
// atomically. Load rejects files from another codec or version with
// ErrIncompatible and corrupt files with ErrMalformed. Alternate codecs
// live in the bson and cbor subpackages. WithEncryptor seals the payload
// with AES-GCM, authenticating the envelope header alongside it.
//
// # Signals
//
// Operations emit capitan signals (SignalReadComplete, SignalWriteComplete,
// SignalWriteSkipped, SignalAppendComplete) carrying path, format, size,
// count and duration.
package stash
