package mock

import "github.com/fwojciec/msdocs"

var _ msdocs.Parser = (*Parser)(nil)

// Parser is a mock implementation of msdocs.Parser.
type Parser struct {
	ParseFn func(path string, data []byte) (*msdocs.Entry, error)
}

func (p *Parser) Parse(path string, data []byte) (*msdocs.Entry, error) {
	return p.ParseFn(path, data)
}
