package mock

import "github.com/fwojciec/cetd"

var _ cetd.Converter = (*Converter)(nil)

// Converter is a mock implementation of cetd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
