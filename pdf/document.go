package pdf

import (
	"bytes"
	"fmt"
	"strings"
)

// document is the in-memory object graph: Catalog(1) -> Pages(2) -> each
// page -> its content stream, with the shared Font(3).
type document struct {
	bodies map[int][]byte
	maxID  int
}

// Render serializes pages as a complete PDF file. It is a pure function of
// its arguments: no timestamps, no randomness, byte-identical across runs.
func Render(pages [][]string, cfg Config) []byte {
	return build(pages, cfg).bytes()
}

func build(pages [][]string, cfg Config) *document {
	d := &document{bodies: make(map[int][]byte)}
	d.bodies[fontID] = []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	ids := newAllocator(fontID + 1)
	pageIDs := make([]int, 0, len(pages))
	for _, page := range pages {
		pageID := ids.alloc()
		contentID := ids.alloc()

		stream := contentStream(page, cfg)
		var content bytes.Buffer
		fmt.Fprintf(&content, "<< /Length %d >>\nstream\n", len(stream))
		content.Write(stream)
		content.WriteString("endstream")
		d.bodies[contentID] = content.Bytes()

		d.bodies[pageID] = fmt.Appendf(nil,
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			pagesID, cfg.PageWidth, cfg.PageHeight, fontID, contentID)
		pageIDs = append(pageIDs, pageID)
	}

	kids := make([]string, 0, len(pageIDs))
	for _, id := range pageIDs {
		kids = append(kids, fmt.Sprintf("%d 0 R", id))
	}
	d.bodies[pagesID] = fmt.Appendf(nil, "<< /Type /Pages /Kids [ %s ] /Count %d >>",
		strings.Join(kids, " "), len(pageIDs))
	d.bodies[catalogID] = fmt.Appendf(nil, "<< /Type /Catalog /Pages %d 0 R >>", pagesID)

	d.maxID = ids.max()
	return d
}

// bytes writes the file: header with binary marker, every object from ID 1
// through the maximum in ascending order, the cross-reference table, and
// the trailer pointing back at it.
func (d *document) bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	buf.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\n'})

	offsets := make([]int, d.maxID+1)
	for id := 1; id <= d.maxID; id++ {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", id)
		buf.Write(d.bodies[id])
		buf.WriteString("\nendobj\n")
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", d.maxID+1)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id <= d.maxID; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}

	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		d.maxID+1, catalogID, xrefOffset)
	return buf.Bytes()
}
