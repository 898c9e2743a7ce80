package stash

import (
	"fmt"
	"io"
	"os"
)

// Option configures a write, save or load call.
type Option func(*options)

type options struct {
	force     bool
	silent    bool
	out       io.Writer
	codec     Codec
	encryptor Encryptor
}

// Force overwrites an existing file instead of skipping the write.
func Force() Option {
	return func(o *options) { o.force = true }
}

// Silent suppresses the "[INFO] save to" notice after a successful write.
// The "already exists" notice is still printed.
func Silent() Option {
	return func(o *options) { o.silent = true }
}

// WithOutput sends notices to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithCodec selects the binary codec used by Save and Load.
// The default is MessagePack.
func WithCodec(c Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithEncryptor seals the binary payload on Save and opens it on Load.
func WithEncryptor(enc Encryptor) Option {
	return func(o *options) { o.encryptor = enc }
}

func newOptions(opts []Option) *options {
	o := &options{
		out:   os.Stdout,
		codec: MessagePack(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// notifyExists prints the idempotent-skip notice.
func (o *options) notifyExists(path string) {
	_, _ = fmt.Fprintf(o.out, "[INFO] %s already exists.\n", path)
}

// notifySaved prints the success notice unless silenced.
func (o *options) notifySaved(path string) {
	if o.silent {
		return
	}
	_, _ = fmt.Fprintf(o.out, "[INFO] save to %s\n", path)
}
