// Package stashtest provides test utilities for stash.
package stashtest

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// TestKey returns a valid 32-byte AES key for testing.
func TestKey() []byte {
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// Path joins elem under a fresh temp directory owned by t.
// Intermediate directories are not created.
func Path(t testing.TB, elem ...string) string {
	t.Helper()
	return filepath.Join(append([]string{t.TempDir()}, elem...)...)
}

// Notices splits captured notice output into lines.
func Notices(buf *bytes.Buffer) []string {
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Item is a struct-shaped record for round-trip tests.
type Item struct {
	ID    int      `json:"id" yaml:"id" msgpack:"id"`
	Name  string   `json:"name" yaml:"name" msgpack:"name"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty" msgpack:"tags,omitempty"`
	Price float64  `json:"price" yaml:"price" msgpack:"price"`
}

// Records returns a small record stream in decoded JSON form.
func Records() []map[string]any {
	return []map[string]any{
		{"id": int64(1), "name": "A"},
		{"id": int64(2), "name": "B", "tags": []any{"x", "y"}},
		{"id": int64(3), "name": "Ünïcødé ✓"},
	}
}
