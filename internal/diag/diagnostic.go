package diag

import (
	"roost/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Label is printed next to the caret underline.
	Label string
	// Line is the line number shown to the user. The primary span always lives
	// on line 1 of its virtual file, so this only affects rendering.
	Line uint32
	Path string
}
