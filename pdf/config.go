package pdf

import "errors"

// ErrBadGeometry reports a page geometry that cannot fit a single line of
// text between the top and bottom margins.
var ErrBadGeometry = errors.New("pdf: page geometry leaves no room for text")

// Config holds the page geometry and text layout, all in PDF points.
type Config struct {
	PageWidth    int
	PageHeight   int
	MarginLeft   int
	MarginTop    int
	MarginBottom int
	FontSize     int
	LineHeight   int
}

// DefaultConfig returns the A4 portrait layout used by the CLI.
func DefaultConfig() Config {
	return Config{
		PageWidth:    595,
		PageHeight:   842,
		MarginLeft:   50,
		MarginTop:    50,
		MarginBottom: 50,
		FontSize:     10,
		LineHeight:   14,
	}
}

// LinesPerPage returns how many text lines fit on one page, or
// ErrBadGeometry if the margins and line height leave room for none.
func (c Config) LinesPerPage() (int, error) {
	if c.LineHeight <= 0 {
		return 0, ErrBadGeometry
	}
	n := (c.PageHeight - c.MarginTop - c.MarginBottom) / c.LineHeight
	if n < 1 {
		return 0, ErrBadGeometry
	}
	return n, nil
}
