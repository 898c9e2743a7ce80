package stash

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// ReadFile returns the whole UTF-8 content of path, trailing newline included.
func ReadFile(path string) (string, error) {
	return readFile(FormatText, path, func(data []byte) (string, int, error) {
		if !utf8.Valid(data) {
			return "", 0, newCodecError(ErrMalformed, path, errInvalidUTF8)
		}
		return string(data), 1, nil
	})
}

// ReadLines returns the lines of path without terminators. A final line
// terminator does not produce a trailing empty element. Besides "\n",
// "\r\n" and "\r", the other Unicode line boundaries (form feed, NEL,
// U+2028 and the like) also end a line.
func ReadLines(path string) ([]string, error) {
	return readFile(FormatText, path, func(data []byte) ([]string, int, error) {
		if !utf8.Valid(data) {
			return nil, 0, newCodecError(ErrMalformed, path, errInvalidUTF8)
		}
		lines := splitLines(string(data))
		return lines, len(lines), nil
	})
}

// WriteFile writes content to path, one line per element, each terminated
// by '\n'. content is a string or a list of strings; a string is written
// as a single line.
//
// An existing file is left untouched unless Force is given; the skip is
// reported on the notice output, not as an error.
func WriteFile(content any, path string, opts ...Option) error {
	lines, err := normalizeLines(content, "content")
	if err != nil {
		return err
	}
	return writeFile(FormatText, path, newOptions(opts), func() ([]byte, error) {
		return joinLines(lines), nil
	})
}

// AppendFile adds content to the end of path, creating the file and its
// parent directory when absent. content follows the WriteFile rules.
func AppendFile(content any, path string) error {
	lines, err := normalizeLines(content, "content")
	if err != nil {
		return err
	}
	return appendData(FormatText, path, len(lines), joinLines(lines))
}

func joinLines(lines []string) []byte {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// splitLines cuts s at every Unicode line boundary: "\n", "\r", "\r\n",
// "\v", "\f", the file, group and record separators (0x1c-0x1e), NEL,
// and U+2028/U+2029. A final boundary does not start another line.
func splitLines(s string) []string {
	lines := []string{}
	start := 0
	for i, r := range s {
		if !isLineBreak(r) {
			continue
		}
		if i < start {
			// second half of a "\r\n" pair
			continue
		}
		lines = append(lines, s[start:i])
		start = i + utf8.RuneLen(r)
		if r == '\r' && start < len(s) && s[start] == '\n' {
			start++
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
