package mdpdf

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatLines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		src   string
		width int
		want  []string
	}{
		{
			name:  "empty document",
			src:   "",
			width: 94,
			want:  nil,
		},
		{
			name:  "paragraph trimmed and wrapped",
			src:   "  plain text  ",
			width: 94,
			want:  []string{"plain text"},
		},
		{
			name:  "heading upper-cased and isolated",
			src:   "intro\n# Title one\nbody",
			width: 94,
			want:  []string{"intro", "", "TITLE ONE", "", "body"},
		},
		{
			name:  "heading at document start has no separator",
			src:   "# hi",
			width: 94,
			want:  []string{"HI"},
		},
		{
			name:  "heading level is not reflected in output",
			src:   "###### deep",
			width: 94,
			want:  []string{"DEEP"},
		},
		{
			name:  "seven hashes is a paragraph",
			src:   "####### nope",
			width: 94,
			want:  []string{"####### nope"},
		},
		{
			name:  "blank lines kept except trailing run",
			src:   "a\n\n\nb\n\n\n",
			width: 94,
			want:  []string{"a", "", "", "b"},
		},
		{
			name:  "bullet wraps with aligned continuation",
			src:   "- hello world",
			width: 8,
			want:  []string{"- hello", "  world"},
		},
		{
			name:  "star bullet renders as dash",
			src:   "* item",
			width: 94,
			want:  []string{"- item"},
		},
		{
			name:  "numbered continuation padding matches marker",
			src:   "12. some text",
			width: 10,
			want:  []string{"12. some", "    text"},
		},
		{
			name:  "indented numbered item keeps indentation",
			src:   "  3. alpha beta",
			width: 11,
			want:  []string{"  3. alpha", "     beta"},
		},
		{
			name:  "fenced code block indented without markers",
			src:   "```\ncode\n```",
			width: 94,
			want:  []string{"", "    code"},
		},
		{
			name:  "fence info string still toggles",
			src:   "```go\nx := 1\n```",
			width: 94,
			want:  []string{"", "    x := 1"},
		},
		{
			name:  "blank code line stays unindented",
			src:   "```\na\n\nb\n```",
			width: 94,
			want:  []string{"", "    a", "", "    b"},
		},
		{
			name:  "unclosed fence stays in code mode",
			src:   "```\nfirst\nsecond",
			width: 94,
			want:  []string{"", "    first", "    second"},
		},
		{
			name:  "code wraps at reduced width",
			src:   "```\nabcdefgh\n```",
			width: 8,
			want:  []string{"", "    abcd", "    efgh"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatLines(tc.src, tc.width)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("FormatLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatLinesWidthBound(t *testing.T) {
	t.Parallel()
	src := strings.Join([]string{
		"# A heading that is rather long and keeps going for quite a while indeed",
		"",
		"A paragraph with a thoroughlyunbreakablewordthatjustwontstopatall in the middle.",
		"- a bullet item that wraps onto several continuation lines when narrow",
		"7. a numbered item that also wraps onto several continuation lines",
		"```",
		"code that is wider than the limit and must be broken up accordingly",
		"```",
	}, "\n")

	for _, width := range []int{10, 20, 94} {
		for _, line := range FormatLines(src, width) {
			if n := len([]rune(line)); n > width {
				t.Fatalf("width %d: line %q is %d runes", width, line, n)
			}
		}
	}
}

func TestFormatLinesDeepIndentStaysWithinWidth(t *testing.T) {
	t.Parallel()
	src := strings.Repeat(" ", 91) + "1. word\n"
	lines := FormatLines(src, 94)
	if len(lines) == 0 {
		t.Fatalf("no output for deeply indented item")
	}
	for _, line := range lines {
		if n := len([]rune(line)); n > 94 {
			t.Fatalf("line %q is %d runes, limit 94", line, n)
		}
	}
	if !strings.Contains(lines[0], "1. ") {
		t.Fatalf("first line %q lost the item marker", lines[0])
	}
}

func TestFormatLinesHeadingAlwaysUpper(t *testing.T) {
	t.Parallel()
	for _, line := range FormatLines("### MiXeD case Words", 94) {
		if line == "" {
			continue
		}
		if line != strings.ToUpper(line) {
			t.Fatalf("heading line %q is not upper-cased", line)
		}
	}
}

func TestFormatLinesBulletDewrap(t *testing.T) {
	t.Parallel()
	lines := FormatLines("- hello world", 8)
	if len(lines) < 2 {
		t.Fatalf("expected a wrapped bullet, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "- ") {
		t.Fatalf("first line %q does not start with the bullet marker", lines[0])
	}
	parts := []string{strings.TrimPrefix(lines[0], "- ")}
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, "  ") {
			t.Fatalf("continuation %q does not start with two spaces", line)
		}
		parts = append(parts, strings.TrimPrefix(line, "  "))
	}
	if got := strings.Join(parts, " "); got != "hello world" {
		t.Fatalf("dewrapped text %q, want %q", got, "hello world")
	}
}

func TestSplitInputLines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{name: "trailing newline", src: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", src: "a\r\nb", want: []string{"a", "b"}},
		{name: "bare cr", src: "a\rb", want: []string{"a", "b"}},
		{name: "form feed", src: "a\fb", want: []string{"a", "b"}},
		{name: "vertical tab", src: "a\vb", want: []string{"a", "b"}},
		{name: "unicode line separator", src: "a b", want: []string{"a", "b"}},
		{name: "next line", src: "ab", want: []string{"a", "b"}},
		{name: "no terminator", src: "a", want: []string{"a"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, splitInputLines(tc.src)); diff != "" {
				t.Fatalf("splitInputLines(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}
