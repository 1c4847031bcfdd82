package mdpdf

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWidth is the maximum number of characters per output line.
const DefaultWidth = 94

const (
	codeIndent   = "    "
	bulletPrefix = "- "
)

// lineFormatter flattens Markdown into fixed-width plain-text lines. The
// only state carried between input lines is whether a fenced code block is
// open; everything else is decided per line.
type lineFormatter struct {
	width       int
	inCodeBlock bool
	lines       []string
}

func newLineFormatter(width int) *lineFormatter {
	if width < 1 {
		width = DefaultWidth
	}
	return &lineFormatter{width: width}
}

// FormatLines renders Markdown as plain-text lines no wider than width
// characters. Blank lines separate paragraphs and are kept, except for a
// trailing run at the end of the document. If width is not positive,
// DefaultWidth is used.
func FormatLines(markdown string, width int) []string {
	f := newLineFormatter(width)
	for _, raw := range splitInputLines(markdown) {
		f.feed(raw)
	}
	return f.finish()
}

func (f *lineFormatter) feed(raw string) {
	line := strings.TrimRightFunc(raw, unicode.IsSpace)
	stripped := strings.TrimSpace(line)

	// A fence line toggles code mode even with an info string after the
	// backticks; the marker itself is never emitted.
	if strings.HasPrefix(stripped, "```") {
		f.inCodeBlock = !f.inCodeBlock
		f.emit("")
		return
	}

	if f.inCodeBlock {
		for _, seg := range wrapText(line, f.width-len(codeIndent)) {
			if seg == "" {
				f.emit("")
				continue
			}
			f.emit(codeIndent + seg)
		}
		return
	}

	if stripped == "" {
		f.emit("")
		return
	}

	if title, ok := headingText(line); ok {
		f.emitHeading(title)
		return
	}

	if body, ok := bulletBody(line); ok {
		f.emitItem(bulletPrefix, body)
		return
	}

	if prefix, body, ok := numberedItem(line); ok {
		f.emitItem(prefix, body)
		return
	}

	for _, seg := range wrapText(stripped, f.width) {
		f.emit(seg)
	}
}

// emitHeading upper-cases the title and isolates it with blank lines. The
// heading level is not reflected in the output.
func (f *lineFormatter) emitHeading(title string) {
	if n := len(f.lines); n > 0 && f.lines[n-1] != "" {
		f.emit("")
	}
	for _, seg := range wrapText(strings.ToUpper(title), f.width) {
		f.emit(seg)
	}
	f.emit("")
}

// emitItem writes a list item: the marker prefix on the first wrapped
// segment, space padding of equal width on the rest. A prefix at or past
// the line limit loses leading indentation until at least one column is
// left for the item text, so no emitted line exceeds the width.
func (f *lineFormatter) emitItem(prefix, body string) {
	if most := f.width - 1; utf8.RuneCountInString(prefix) > most {
		r := []rune(prefix)
		prefix = string(r[len(r)-most:])
	}
	pad := strings.Repeat(" ", utf8.RuneCountInString(prefix))
	for i, seg := range wrapText(body, f.width-utf8.RuneCountInString(prefix)) {
		if i == 0 {
			f.emit(prefix + seg)
			continue
		}
		f.emit(pad + seg)
	}
}

func (f *lineFormatter) emit(line string) {
	f.lines = append(f.lines, line)
}

func (f *lineFormatter) finish() []string {
	lines := f.lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// headingText matches 1-6 leading '#' characters followed by whitespace
// and returns the trimmed heading text.
func headingText(line string) (string, bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n == len(line) {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(line[n:])
	if !unicode.IsSpace(r) {
		return "", false
	}
	return strings.TrimSpace(line[n:]), true
}

// bulletBody matches optional indentation, a '-' or '*' marker, and
// whitespace, returning the trimmed item text. The indentation is dropped.
func bulletBody(line string) (string, bool) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if rest == "" || (rest[0] != '-' && rest[0] != '*') {
		return "", false
	}
	tail := rest[1:]
	if tail == "" {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(tail)
	if !unicode.IsSpace(r) {
		return "", false
	}
	return strings.TrimSpace(tail), true
}

// numberedItem matches optional indentation, digits, and a dot followed by
// whitespace. The returned prefix keeps the indentation and the marker so
// continuation lines align under the item text.
func numberedItem(line string) (prefix, body string, ok bool) {
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	j := i
	for j < len(line) && line[j] >= '0' && line[j] <= '9' {
		j++
	}
	if j == i || j == len(line) || line[j] != '.' {
		return "", "", false
	}
	k := j + 1
	if k == len(line) {
		return "", "", false
	}
	r, _ := utf8.DecodeRuneInString(line[k:])
	if !unicode.IsSpace(r) {
		return "", "", false
	}
	return line[:j+1] + " ", strings.TrimSpace(line[k:]), true
}

// splitInputLines splits on \r\n and every single-character line break
// (\n, \r, \v, \f, FS/GS/RS, NEL, LS, PS) without yielding a phantom empty
// line after a trailing terminator.
func splitInputLines(src string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch r {
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '', ' ', ' ':
			lines = append(lines, src[start:i])
			i += size
			start = i
		case '\r':
			lines = append(lines, src[start:i])
			i += size
			if i < len(src) && src[i] == '\n' {
				i++
			}
			start = i
		default:
			i += size
		}
	}
	if start < len(src) {
		lines = append(lines, src[start:])
	}
	return lines
}
