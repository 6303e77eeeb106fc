package diag

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"

	"roost/internal/source"
)

// ErrEmptyLine is returned when there is no source line to point at.
var ErrEmptyLine = errors.New("source line is empty")

// Input is the flat set of answers a Diagnostic is assembled from.
// Start and End are rune offsets into Line, End exclusive.
type Input struct {
	Severity Severity
	Summary  string
	Line     string
	Start    int
	End      int
	Message  string
	LineNo   int
	Path     string
	ErrNum   int
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Line:     1,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithLabel sets the caret message.
func (d Diagnostic) WithLabel(label string) Diagnostic {
	d.Label = label
	return d
}

// At overrides the displayed path and line number.
func (d Diagnostic) At(path string, line uint32) Diagnostic {
	d.Path = path
	d.Line = line
	return d
}

// Build registers in.Line as a virtual file in fs and returns the diagnostic
// pointing at runes [in.Start, in.End) of it.
func Build(fs *source.FileSet, in Input) (Diagnostic, error) {
	line := strings.TrimRight(in.Line, "\r\n")
	if line == "" {
		return Diagnostic{}, ErrEmptyLine
	}
	code, err := ParseCode(in.ErrNum)
	if err != nil {
		return Diagnostic{}, err
	}
	lineNo, err := safecast.Conv[uint32](in.LineNo)
	if err != nil {
		return Diagnostic{}, fmt.Errorf("line number %d: %w", in.LineNo, err)
	}
	if lineNo == 0 {
		return Diagnostic{}, fmt.Errorf("line number must be positive")
	}

	id := fs.AddVirtual(in.Path, []byte(line))
	span, err := fs.RuneSpan(id, in.Start, in.End)
	if err != nil {
		return Diagnostic{}, fmt.Errorf("highlight: %w", err)
	}

	return New(in.Severity, code, span, in.Summary).
		WithLabel(in.Message).
		At(in.Path, lineNo), nil
}
