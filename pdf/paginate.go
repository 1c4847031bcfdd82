package pdf

// Paginate splits lines into consecutive chunks of at most perPage lines,
// preserving order. The last chunk may be shorter. An empty sequence still
// yields one page holding a single empty line, so every document renders
// at least one page.
func Paginate(lines []string, perPage int) [][]string {
	if len(lines) == 0 {
		return [][]string{{""}}
	}
	pages := make([][]string, 0, (len(lines)+perPage-1)/perPage)
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}
	return pages
}
