package pdf

// substitution replaces runes outside Latin-1 in the output text.
const substitution = '?'

// encodeLatin1 converts text to Latin-1 bytes, best effort: every rune
// above U+00FF becomes the substitution character. Lossy, never fails.
func encodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			out = append(out, substitution)
			continue
		}
		out = append(out, byte(r))
	}
	return out
}

// escapeString escapes the PDF string-literal delimiters. The single pass
// escapes backslashes before any new backslashes are introduced for the
// parentheses, so nothing is double-escaped.
func escapeString(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for _, c := range s {
		switch c {
		case '\\', '(', ')':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return out
}
