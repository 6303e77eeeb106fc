package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"roost/internal/diag"
	"roost/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	Line      uint32 `json:"line"`
	StartCol  uint32 `json:"start_col"`
	EndCol    uint32 `json:"end_col"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Label    string       `json:"label,omitempty"`
	Source   string       `json:"source"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput формирует структуру вывода без сериализации.
func BuildDiagnosticsOutput(d diag.Diagnostic, fs *source.FileSet) DiagnosticsOutput {
	start, end := fs.Resolve(d.Primary)
	item := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Label:    d.Label,
		Source:   fs.Get(d.Primary.File).GetLine(1),
		Location: LocationJSON{
			File:      d.Path,
			Line:      d.Line,
			StartCol:  start.Col,
			EndCol:    end.Col,
			StartByte: d.Primary.Start,
			EndByte:   d.Primary.End,
		},
	}
	return DiagnosticsOutput{
		Diagnostics: []DiagnosticJSON{item},
		Count:       1,
	}
}

// JSON форматирует диагностику в JSON с отступами.
func JSON(w io.Writer, d diag.Diagnostic, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(d, fs))
}

// MsgPack writes the same payload as JSON in MessagePack, keyed by the json tags.
func MsgPack(w io.Writer, d diag.Diagnostic, fs *source.FileSet) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(BuildDiagnosticsOutput(d, fs))
}
