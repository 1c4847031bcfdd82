// Package mdpdf converts Markdown documents into paginated PDF files.
//
// The conversion is a deterministic two-step pipeline: Markdown text is
// first flattened into fixed-width plain-text lines (headings upper-cased,
// list items aligned, fenced code indented), then the line sequence is
// paginated and serialized as a minimal PDF with one content stream per
// page. The PDF byte structure (objects, cross-reference table, trailer)
// is written directly; no PDF library is involved. Identical input always
// produces identical output bytes.
//
// Example:
//
//	var buf bytes.Buffer
//	res, err := mdpdf.Convert(mdpdf.ConvertRequest{
//		Reader: strings.NewReader("# Report\n\nHello PDF.\n"),
//		Writer: &buf,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Pages)
//
// Page geometry and the line width can be adjusted through ConvertRequest;
// the zero values reproduce the default A4 layout.
package mdpdf
