package mock

import "github.com/fwojciec/msdocs"

var _ msdocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of msdocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
