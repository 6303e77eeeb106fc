package diag

import (
	"fmt"
	"strings"

	"roost/internal/source"
)

// FormatShort renders d as a single stable line:
//
//	<severity> <code> <path>:<line>:<col> <message>
//
// Newlines inside the message are folded to spaces.
func FormatShort(d Diagnostic, fs *source.FileSet) string {
	var col uint32 = 1
	if fs != nil && int(d.Primary.File) < fs.Len() {
		start, _ := fs.Resolve(d.Primary)
		col = start.Col
	}
	msg := strings.Join(strings.Fields(d.Message), " ")
	return fmt.Sprintf("%s %s %s:%d:%d %s", d.Severity.Label(), d.Code.ID(), d.Path, d.Line, col, msg)
}
