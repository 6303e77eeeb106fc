package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"roost/internal/diag"
	"roost/internal/source"
)

// palette holds the styles of one banner. Every color is forced on or off
// explicitly so output never depends on the terminal.
type palette struct {
	header    *color.Color
	summary   *color.Color
	gutter    *color.Color
	highlight *color.Color
}

func newPalette(sev diag.Severity, enabled bool) palette {
	accent := color.FgRed
	switch sev {
	case diag.SevWarning:
		accent = color.FgYellow
	case diag.SevInfo:
		accent = color.FgGreen
	}
	p := palette{
		header:    color.New(accent, color.Bold),
		summary:   color.New(color.Bold),
		gutter:    color.New(color.FgBlue, color.Bold),
		highlight: color.New(accent, color.Bold),
	}
	for _, c := range []*color.Color{p.header, p.summary, p.gutter, p.highlight} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностику в стиле rustc:
//
//	error[E0308]: mismatched types
//	 --> main.rs:1:14
//	  |
//	1 | let x: i32 = "five";
//	  |              ^^^^^^ expected `i32`, found `&str`
//	  |
//
// Подчёркивание считается в ячейках терминала, табы раскрываются в пробелы.
func Pretty(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	if fs == nil {
		return fmt.Errorf("nil FileSet")
	}
	p := newPalette(d.Severity, opts.Color)

	file := fs.Get(d.Primary.File)
	line := []rune(file.GetLine(1))
	start, end := fs.Resolve(d.Primary)
	from := min(int(start.Col)-1, len(line))
	to := min(max(int(end.Col)-1, from), len(line))

	tab := strings.Repeat(" ", opts.tabWidth())
	before := strings.ReplaceAll(string(line[:from]), "\t", tab)
	marked := strings.ReplaceAll(string(line[from:to]), "\t", tab)
	after := strings.ReplaceAll(string(line[to:]), "\t", tab)

	lineNo := strconv.FormatUint(uint64(d.Line), 10)
	pad := strings.Repeat(" ", len(lineNo))
	emptyGutter := pad + " " + p.gutter.Sprint("|")

	var b strings.Builder
	b.WriteString(p.header.Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID()))
	b.WriteString(p.summary.Sprint(": " + d.Message))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", pad, p.gutter.Sprint("-->"), d.Path, d.Line, start.Col)
	b.WriteString(emptyGutter)
	b.WriteByte('\n')

	b.WriteString(p.gutter.Sprint(lineNo + " |"))
	b.WriteByte(' ')
	b.WriteString(before)
	if marked != "" {
		b.WriteString(p.highlight.Sprint(marked))
	}
	b.WriteString(after)
	b.WriteByte('\n')

	carets := max(runewidth.StringWidth(marked), 1)
	b.WriteString(emptyGutter)
	b.WriteByte(' ')
	b.WriteString(strings.Repeat(" ", runewidth.StringWidth(before)))
	b.WriteString(p.highlight.Sprint(strings.Repeat("^", carets)))
	if d.Label != "" {
		b.WriteByte(' ')
		b.WriteString(p.highlight.Sprint(d.Label))
	}
	b.WriteByte('\n')
	b.WriteString(emptyGutter)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
