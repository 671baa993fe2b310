package mock

import "github.com/fwojciec/msdocs"

var _ msdocs.Codec = (*Codec)(nil)

// Codec is a mock implementation of msdocs.Codec.
type Codec struct {
	CompressFn   func(data []byte) ([]byte, error)
	DecompressFn func(data []byte) ([]byte, error)
}

func (c *Codec) Compress(data []byte) ([]byte, error) {
	return c.CompressFn(data)
}

func (c *Codec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressFn(data)
}
