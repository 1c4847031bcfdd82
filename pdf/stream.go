package pdf

import (
	"bytes"
	"fmt"
)

// contentStream builds the text operators for one page: begin text, select
// the shared font, set the origin to the top-left margin corner (PDF y
// grows upward), set the leading, then one show-string and one
// move-to-next-line per line. The trailing T* after the last line is
// harmless and kept so output stays byte-stable.
func contentStream(lines []string, cfg Config) []byte {
	var buf bytes.Buffer
	buf.WriteString("BT\n")
	fmt.Fprintf(&buf, "/F1 %d Tf\n", cfg.FontSize)
	fmt.Fprintf(&buf, "1 0 0 1 %d %d Tm\n", cfg.MarginLeft, cfg.PageHeight-cfg.MarginTop)
	fmt.Fprintf(&buf, "%d TL\n", cfg.LineHeight)
	for _, line := range lines {
		buf.WriteByte('(')
		buf.Write(escapeString(encodeLatin1(line)))
		buf.WriteString(") Tj\nT*\n")
	}
	buf.WriteString("ET\n")
	return buf.Bytes()
}
