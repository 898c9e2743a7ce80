package stash

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Envelope layout:
//
//	magic "STSH" | version | flags | len(contentType) | contentType | blake2b-256(payload) | payload
const (
	envelopeMagic   = "STSH"
	envelopeVersion = byte(1)
	checksumSize    = blake2b.Size256

	flagSealed = byte(1 << 0)
)

var (
	errBadMagic    = errors.New("not a stash binary file")
	errTruncated   = errors.New("truncated header")
	errChecksum    = errors.New("checksum mismatch")
	errUnknownFlag = errors.New("unknown header flags")
)

// envelope is the decoded header of a binary file. header holds the raw
// bytes from magic through content type, the part a sealed payload is
// bound to.
type envelope struct {
	version     byte
	sealed      bool
	contentType string
	header      []byte
	payload     []byte
}

// envelopeHeader builds magic|version|flags|len|contentType.
func envelopeHeader(contentType string, sealed bool) ([]byte, error) {
	if len(contentType) > 255 {
		return nil, fmt.Errorf("content type %q exceeds 255 bytes", contentType)
	}
	var flags byte
	if sealed {
		flags |= flagSealed
	}
	h := make([]byte, 0, len(envelopeMagic)+3+len(contentType))
	h = append(h, envelopeMagic...)
	h = append(h, envelopeVersion, flags, byte(len(contentType))) // #nosec G115 -- bounds checked above
	h = append(h, contentType...)
	return h, nil
}

// encodeEnvelope appends the payload checksum and payload to header.
func encodeEnvelope(header, payload []byte) []byte {
	sum := blake2b.Sum256(payload)
	out := make([]byte, 0, len(header)+checksumSize+len(payload))
	out = append(out, header...)
	out = append(out, sum[:]...)
	return append(out, payload...)
}

// decodeEnvelope parses and verifies a binary file. Structural damage
// wraps ErrMalformed; a header this build cannot read wraps ErrIncompatible.
func decodeEnvelope(path string, data []byte) (*envelope, error) {
	if len(data) < len(envelopeMagic) || string(data[:len(envelopeMagic)]) != envelopeMagic {
		return nil, newCodecError(ErrMalformed, path, errBadMagic)
	}
	rest := data[len(envelopeMagic):]
	if len(rest) < 3 {
		return nil, newCodecError(ErrMalformed, path, errTruncated)
	}

	env := &envelope{version: rest[0]}
	if env.version != envelopeVersion {
		return nil, newCodecError(ErrIncompatible, path,
			fmt.Errorf("envelope version %d, want %d", env.version, envelopeVersion))
	}
	flags := rest[1]
	if flags&^flagSealed != 0 {
		return nil, newCodecError(ErrIncompatible, path, errUnknownFlag)
	}
	env.sealed = flags&flagSealed != 0

	ctLen := int(rest[2])
	rest = rest[3:]
	if len(rest) < ctLen+checksumSize {
		return nil, newCodecError(ErrMalformed, path, errTruncated)
	}
	env.contentType = string(rest[:ctLen])
	env.header = data[:len(envelopeMagic)+3+ctLen]
	sum := rest[ctLen : ctLen+checksumSize]
	env.payload = rest[ctLen+checksumSize:]

	got := blake2b.Sum256(env.payload)
	if !bytes.Equal(got[:], sum) {
		return nil, newCodecError(ErrMalformed, path, errChecksum)
	}
	return env, nil
}
