package stash

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for file events.
var (
	SignalReadComplete   = capitan.NewSignal("stash.read.complete", "Read or load finished")
	SignalWriteComplete  = capitan.NewSignal("stash.write.complete", "Write or save finished")
	SignalWriteSkipped   = capitan.NewSignal("stash.write.skipped", "Write skipped, file already exists")
	SignalAppendComplete = capitan.NewSignal("stash.append.complete", "Append finished")
)

// Keys for typed event data.
var (
	KeyPath     = capitan.NewStringKey("path")
	KeyFormat   = capitan.NewStringKey("format")
	KeySize     = capitan.NewIntKey("size")
	KeyCount    = capitan.NewIntKey("count")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitReadComplete emits an event when a read or load finishes.
// count is the number of lines or records, 1 for whole documents.
func emitReadComplete(ctx context.Context, format Format, path string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(string(format)),
		KeyPath.Field(path),
		KeyCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReadComplete, fields...)
	}
}

// emitWriteComplete emits an event when a write or save finishes.
func emitWriteComplete(ctx context.Context, format Format, path string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(string(format)),
		KeyPath.Field(path),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalWriteComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalWriteComplete, fields...)
	}
}

// emitWriteSkipped emits an event when a write meets an existing file.
func emitWriteSkipped(ctx context.Context, format Format, path string) {
	capitan.Emit(ctx, SignalWriteSkipped,
		KeyFormat.Field(string(format)),
		KeyPath.Field(path),
	)
}

// emitAppendComplete emits an event when an append finishes.
func emitAppendComplete(ctx context.Context, format Format, path string, count, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(string(format)),
		KeyPath.Field(path),
		KeyCount.Field(count),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalAppendComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalAppendComplete, fields...)
	}
}
