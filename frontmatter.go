package mdpdf

import "strings"

// stripFrontMatter removes a front-matter block from the start of the
// document: an opening delimiter line (---, +++, or ;;;), at least one
// metadata-looking line, and a matching closing delimiter line. Anything
// else, including an unterminated opener, passes through unchanged.
func stripFrontMatter(src string) string {
	first, rest, ok := cutLine(src)
	if !ok {
		return src
	}
	delim, isFrontMatter := frontMatterDelimiter(trimBOM(first))
	if !isFrontMatter {
		return src
	}
	second, rest, ok := cutLine(rest)
	if !ok || !metadataLikely(second) {
		return src
	}
	for {
		line, next, ok := cutLine(rest)
		if !ok {
			return src
		}
		if strings.TrimSpace(line) == delim {
			return next
		}
		rest = next
	}
}

// cutLine returns the first line without its terminator and the remainder.
func cutLine(src string) (line, rest string, ok bool) {
	if src == "" {
		return "", "", false
	}
	i := strings.IndexByte(src, '\n')
	if i < 0 {
		return strings.TrimSuffix(src, "\r"), "", true
	}
	return strings.TrimSuffix(src[:i], "\r"), src[i+1:], true
}

func frontMatterDelimiter(line string) (string, bool) {
	switch strings.TrimSpace(line) {
	case "---":
		return "---", true
	case "+++":
		return "+++", true
	case ";;;":
		return ";;;", true
	default:
		return "", false
	}
}

func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
