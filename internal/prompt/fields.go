package prompt

import (
	"math"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Field names of the default form.
const (
	FieldSummary = "summary"
	FieldLine    = "line"
	FieldStart   = "start"
	FieldEnd     = "end"
	FieldMessage = "message"
	FieldLineNo  = "lineno"
	FieldPath    = "path"
	FieldErrNum  = "errnum"
)

// Defaults are the configurable fallbacks of the default form.
type Defaults struct {
	Path   string
	LineNo int
	ErrNum int
}

func constant(v string) func(Values) (string, bool) {
	return func(Values) (string, bool) { return v, true }
}

func lineLen(vals Values) int {
	return utf8.RuneCountInString(vals[FieldLine])
}

// DefaultFields returns the questions asked by roost, in order. Positions are
// 0-based rune indices into the line; the end position is inclusive.
func DefaultFields(d Defaults) FieldSet {
	return FieldSet{
		{Name: FieldSummary, Label: "summary"},
		{
			Name:      FieldLine,
			Label:     "line",
			Normalize: norm.NFC.String,
			Ruler:     true,
		},
		{
			Name:    FieldStart,
			Label:   "error start position",
			Kind:    KindInt,
			Default: constant("0"),
			Bounds: func(v Values) (int, int, bool) {
				return 0, lineLen(v) - 1, true
			},
		},
		{
			Name:  FieldEnd,
			Label: "error end position",
			Kind:  KindInt,
			Default: func(v Values) (string, bool) {
				return strconv.Itoa(lineLen(v) - 1), true
			},
			Bounds: func(v Values) (int, int, bool) {
				start, err := v.Int(FieldStart)
				if err != nil {
					start = 0
				}
				return start, lineLen(v) - 1, true
			},
		},
		{Name: FieldMessage, Label: "message"},
		{
			Name:    FieldLineNo,
			Label:   "line number",
			Kind:    KindInt,
			Default: constant(strconv.Itoa(d.LineNo)),
			Bounds: func(Values) (int, int, bool) {
				return 1, math.MaxInt32, true
			},
		},
		{
			Name:    FieldPath,
			Label:   "path",
			Default: constant(d.Path),
		},
		{
			Name:    FieldErrNum,
			Label:   "error number",
			Kind:    KindInt,
			Default: constant(strconv.Itoa(d.ErrNum)),
			Bounds: func(Values) (int, int, bool) {
				return 0, 9999, true
			},
		},
	}
}
