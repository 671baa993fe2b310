// Package zstd compresses entry descriptions with Zstandard.
package zstd

import (
	"github.com/fwojciec/msdocs"
	"github.com/klauspost/compress/zstd"
)

// Ensure Codec implements msdocs.Codec at compile time.
var _ msdocs.Codec = (*Codec)(nil)

// Codec implements msdocs.Codec using zstd. A single Codec is safe for
// concurrent use; EncodeAll and DecodeAll do not share state between calls.
type Codec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCodec creates a Codec with the default compression level.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, err
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Compress returns the compressed form of data.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	return c.enc.EncodeAll(data, nil), nil
}

// Decompress expands data previously produced by Compress.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	out, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, msdocs.Errorf(msdocs.EINTERNAL, "corrupt compressed data: %v", err)
	}
	return out, nil
}
