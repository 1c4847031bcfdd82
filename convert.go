package mdpdf

import (
	"errors"
	"fmt"
	"io"

	"pkt.systems/mdpdf/pdf"
)

// ConvertRequest carries the inputs for a single conversion run.
type ConvertRequest struct {
	// Reader supplies the Markdown source, read to EOF as UTF-8 text.
	Reader io.Reader
	// Writer receives the serialized PDF bytes.
	Writer io.Writer
	// Width is the maximum characters per line; DefaultWidth when zero.
	Width int
	// Page is the page geometry; pdf.DefaultConfig() when zero.
	Page pdf.Config
	// KeepFrontMatter renders a leading front-matter block literally
	// instead of skipping it.
	KeepFrontMatter bool
}

// Result reports what a conversion produced.
type Result struct {
	Pages int
}

// Convert reads the whole Markdown document, formats it into fixed-width
// lines, paginates, and writes the PDF in one pass. The output is a pure
// function of the input and the request settings.
func Convert(req ConvertRequest) (Result, error) {
	if req.Reader == nil || req.Writer == nil {
		return Result{}, errors.New("mdpdf: reader and writer are required")
	}
	width := req.Width
	if width <= 0 {
		width = DefaultWidth
	}
	cfg := req.Page
	if cfg == (pdf.Config{}) {
		cfg = pdf.DefaultConfig()
	}
	perPage, err := cfg.LinesPerPage()
	if err != nil {
		return Result{}, fmt.Errorf("page layout: %w", err)
	}

	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}
	markdown := string(src)
	if !req.KeepFrontMatter {
		markdown = stripFrontMatter(markdown)
	}

	lines := FormatLines(markdown, width)
	pages := pdf.Paginate(lines, perPage)
	if _, err := req.Writer.Write(pdf.Render(pages, cfg)); err != nil {
		return Result{}, fmt.Errorf("write output: %w", err)
	}
	return Result{Pages: len(pages)}, nil
}
