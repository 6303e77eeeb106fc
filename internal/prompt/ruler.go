package prompt

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteRuler prints a column guide for line so the user can pick highlight
// positions:
//
//	──────────
//	 0  1  2
//	 l  e  t
//	──────────
//
// Every cell is as wide as the largest index plus one.
func WriteRuler(w io.Writer, line string) error {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}
	cell := len(strconv.Itoa(len(runes))) + 1
	rule := strings.Repeat("─", cell*len(runes))

	var b strings.Builder
	b.WriteString(rule)
	b.WriteByte('\n')
	for i := range runes {
		b.WriteString(center(strconv.Itoa(i), cell))
	}
	b.WriteByte('\n')
	for _, r := range runes {
		b.WriteString(center(printable(r), cell))
	}
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// center pads s to width display cells, extra space going to the right.
func center(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	left := (width - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-sw-left)
}

func printable(r rune) string {
	if r == '\t' {
		return " "
	}
	return string(r)
}
