// Package pdf paginates plain-text lines and serializes them as a minimal
// PDF document: one page object and one content stream per page, a shared
// Type1 Helvetica font, a cross-reference table, and a trailer, all written
// byte by byte without a PDF library.
package pdf
