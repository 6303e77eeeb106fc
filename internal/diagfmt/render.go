package diagfmt

import (
	"bytes"
	"fmt"
	"io"

	"roost/internal/diag"
	"roost/internal/source"
)

// Render writes d to w in the format chosen by opts.
func Render(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts Options) error {
	switch opts.Format {
	case FormatPretty:
		return Pretty(w, d, fs, opts.Pretty)
	case FormatShort:
		_, err := fmt.Fprintln(w, diag.FormatShort(d, fs))
		return err
	case FormatJSON:
		return JSON(w, d, fs)
	case FormatMsgPack:
		return MsgPack(w, d, fs)
	default:
		return fmt.Errorf("unknown format %v", opts.Format)
	}
}

// Bytes renders d into memory. The result is what every sink receives.
func Bytes(d diag.Diagnostic, fs *source.FileSet, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, d, fs, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
