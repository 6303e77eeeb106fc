package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"roost/internal/diag"
	"roost/internal/source"
)

// CheckDiagnostic runs the invariants every built diagnostic must hold:
// 1) the primary span belongs to a file registered in fs
// 2) the span lies within the file content and on rune boundaries
// 3) the displayed line number is positive and the code fits in four digits
func CheckDiagnostic(d diag.Diagnostic, fs *source.FileSet) error {
	if fs == nil {
		return fmt.Errorf("nil FileSet")
	}
	if int(d.Primary.File) >= fs.Len() {
		return fmt.Errorf("span file %d not in FileSet (%d files)", d.Primary.File, fs.Len())
	}
	sf := fs.Get(d.Primary.File)
	if sf.Flags&source.FileVirtual == 0 {
		return fmt.Errorf("span file %q is not virtual", sf.Path)
	}

	// 2) span inside content, aligned on runes
	sp := d.Primary
	if sp.End < sp.Start {
		return fmt.Errorf("inverted span: %v", sp)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if sp.End > lenContent {
		return fmt.Errorf("span end beyond content: %d > %d", sp.End, lenContent)
	}
	for _, off := range []uint32{sp.Start, sp.End} {
		if off < lenContent && !utf8.RuneStart(sf.Content[off]) {
			return fmt.Errorf("span offset %d splits a rune", off)
		}
	}

	// 3) presentation fields
	if d.Line == 0 {
		return fmt.Errorf("line number is zero")
	}
	if d.Code > diag.MaxCode {
		return fmt.Errorf("code %d exceeds %d", d.Code, diag.MaxCode)
	}
	return nil
}
