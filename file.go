package stash

import (
	"context"
	"os"
	"time"
)

// writeFile applies the shared writer policy: an existing path without
// Force is skipped with a notice, otherwise encode runs and its output
// atomically replaces the file.
func writeFile(format Format, path string, o *options, encode func() ([]byte, error)) (retErr error) {
	ctx := context.Background()
	if !o.force && exists(path) {
		o.notifyExists(path)
		emitWriteSkipped(ctx, format, path)
		return nil
	}

	start := time.Now()
	size := 0
	defer func() {
		emitWriteComplete(ctx, format, path, size, time.Since(start), retErr)
	}()

	data, err := encode()
	if err != nil {
		return err
	}
	size = len(data)

	if err := writeAtomic(path, data); err != nil {
		return err
	}
	o.notifySaved(path)
	return nil
}

// readFile loads path and hands the bytes to decode, which returns the
// value and the count reported in the read signal.
func readFile[T any](format Format, path string, decode func([]byte) (T, int, error)) (_ T, retErr error) {
	ctx := context.Background()
	start := time.Now()
	count := 0
	defer func() {
		emitReadComplete(ctx, format, path, count, time.Since(start), retErr)
	}()

	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, err
	}

	v, n, err := decode(data)
	if err != nil {
		return zero, err
	}
	count = n
	return v, nil
}

// appendData appends pre-encoded lines to path. Appends never skip and
// never print.
func appendData(format Format, path string, count int, data []byte) error {
	start := time.Now()
	err := appendFile(path, data)
	emitAppendComplete(context.Background(), format, path, count, len(data), time.Since(start), err)
	return err
}
