package stash

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Codec provides content-type aware marshaling for Save and Load.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/msgpack").
	// It is recorded in every saved file and must match on load.
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// msgpackCodec implements Codec for MessagePack.
type msgpackCodec struct{}

// MessagePack returns the default binary codec.
func MessagePack() Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
