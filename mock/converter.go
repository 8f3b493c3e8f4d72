package mock

import "github.com/fwojciec/orgdocs"

var _ orgdocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of orgdocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
