package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"pkt.systems/mdpdf"
	"pkt.systems/mdpdf/pdf"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdpdf")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		width           int
		fontSize        int
		margin          int
		lineHeight      int
		keepFrontMatter bool
	)

	defaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("mdpdf", pflag.ContinueOnError)
	flags.IntVarP(&width, "width", "w", mdpdf.DefaultWidth, "Maximum characters per output line")
	flags.IntVar(&fontSize, "font-size", defaults.FontSize, "Font size in points")
	flags.IntVar(&margin, "margin", defaults.MarginLeft, "Page margin in points")
	flags.IntVar(&lineHeight, "line-height", defaults.LineHeight, "Line height in points")
	flags.BoolVar(&keepFrontMatter, "keep-front-matter", false, "Render front matter literally instead of skipping it")
	flags.SetInterspersed(true)
	flags.Usage = func() { printUsage(stdout, flags) }

	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	args = flags.Args()
	if len(args) != 2 {
		printUsage(stdout, flags)
		return 1
	}
	inPath, outPath := args[0], args[1]

	if _, err := os.Stat(inPath); os.IsNotExist(err) {
		fmt.Fprintf(stdout, "Input file not found: %s\n", inPath)
		return 1
	}

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	defer func() { _ = in.Close() }()

	cfg := defaults
	cfg.FontSize = fontSize
	cfg.MarginLeft = margin
	cfg.MarginTop = margin
	cfg.MarginBottom = margin
	cfg.LineHeight = lineHeight

	// Render fully in memory first so a failed conversion never leaves a
	// truncated output file behind.
	var buf bytes.Buffer
	res, err := mdpdf.Convert(mdpdf.ConvertRequest{
		Reader:          in,
		Writer:          &buf,
		Width:           width,
		Page:            cfg,
		KeepFrontMatter: keepFrontMatter,
	})
	if err != nil {
		fmt.Fprintf(stderr, "convert: %v\n", err)
		return 1
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(stderr, "write %s: %v\n", outPath, err)
		return 1
	}

	fmt.Fprintf(stdout, "PDF generated: %s (%d pages)\n", outPath, res.Pages)
	return 0
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, version.Module(), version.Current())
	fmt.Fprintln(w, "Usage: mdpdf [flags] <input.md> <output.pdf>")
	fmt.Fprintln(w, "\nFlags:")
	flags.SetOutput(w)
	flags.PrintDefaults()
}
