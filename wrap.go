package mdpdf

import (
	"strings"
	"unicode"

	"github.com/muesli/reflow/ansi"
)

// wrapText wraps text at whitespace boundaries so that no output line is
// wider than width. Words wider than a full line are broken mid-word.
// Whitespace runs inside a line are preserved; whitespace at wrap points
// is dropped. Empty or all-whitespace input yields a single empty segment,
// never an empty slice.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	chunks := splitChunks(text)
	var lines []string
	for len(chunks) > 0 {
		// Leading whitespace is kept on the first line only; code lines
		// rely on that to preserve their indentation.
		if len(lines) > 0 && isBlank(chunks[0]) {
			chunks = chunks[1:]
			if len(chunks) == 0 {
				break
			}
		}
		var cur []string
		curWidth := 0
		for len(chunks) > 0 {
			w := ansi.PrintableRuneWidth(chunks[0])
			if curWidth+w > width {
				break
			}
			cur = append(cur, chunks[0])
			curWidth += w
			chunks = chunks[1:]
		}
		if len(chunks) > 0 && ansi.PrintableRuneWidth(chunks[0]) > width {
			head, tail := splitAtWidth(chunks[0], width-curWidth)
			if head == "" && len(cur) == 0 {
				// A single rune wider than the whole line still has to go
				// somewhere.
				r := []rune(chunks[0])
				head, tail = string(r[0]), string(r[1:])
			}
			if head != "" {
				cur = append(cur, head)
			}
			if tail != "" {
				chunks[0] = tail
			} else {
				chunks = chunks[1:]
			}
		}
		for len(cur) > 0 && isBlank(cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, ""))
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// splitChunks cuts text into alternating whitespace and word runs.
func splitChunks(text string) []string {
	var chunks []string
	start := 0
	blank := false
	for i, r := range text {
		b := unicode.IsSpace(r)
		if i == 0 {
			blank = b
			continue
		}
		if b != blank {
			chunks = append(chunks, text[start:i])
			start = i
			blank = b
		}
	}
	if start < len(text) {
		chunks = append(chunks, text[start:])
	}
	return chunks
}

// splitAtWidth cuts chunk after the longest prefix not wider than limit.
func splitAtWidth(chunk string, limit int) (head, tail string) {
	if limit < 1 {
		return "", chunk
	}
	w := 0
	for i, r := range chunk {
		rw := ansi.PrintableRuneWidth(string(r))
		if w+rw > limit {
			return chunk[:i], chunk[i:]
		}
		w += rw
	}
	return chunk, ""
}

func isBlank(chunk string) bool {
	return strings.TrimSpace(chunk) == ""
}
