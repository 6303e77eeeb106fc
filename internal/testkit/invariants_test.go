package testkit

import (
	"testing"

	"roost/internal/diag"
	"roost/internal/source"
)

func TestCheckDiagnosticAcceptsBuilt(t *testing.T) {
	fs := source.NewFileSet()
	d, err := diag.Build(fs, diag.Input{
		Summary: "bad",
		Line:    "let ж = 1;",
		Start:   4,
		End:     5,
		LineNo:  3,
		Path:    "main.rs",
		ErrNum:  9999,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := CheckDiagnostic(d, fs); err != nil {
		t.Fatalf("CheckDiagnostic: %v", err)
	}
}

func TestCheckDiagnosticRejects(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.rs", []byte("let ж = 1;"))
	disk := fs.Add("lib.rs", []byte("x"), 0)

	cases := []struct {
		name string
		d    diag.Diagnostic
	}{
		{"unknown file", diag.Diagnostic{Primary: source.Span{File: 7}, Line: 1}},
		{"not virtual", diag.Diagnostic{Primary: source.Span{File: disk, Start: 0, End: 1}, Line: 1}},
		{"inverted", diag.Diagnostic{Primary: source.Span{File: id, Start: 3, End: 2}, Line: 1}},
		{"past end", diag.Diagnostic{Primary: source.Span{File: id, Start: 0, End: 40}, Line: 1}},
		{"split rune", diag.Diagnostic{Primary: source.Span{File: id, Start: 5, End: 6}, Line: 1}},
		{"zero line", diag.Diagnostic{Primary: source.Span{File: id, Start: 0, End: 1}}},
		{"big code", diag.Diagnostic{Primary: source.Span{File: id, Start: 0, End: 1}, Line: 1, Code: 10000}},
	}
	for _, tc := range cases {
		if err := CheckDiagnostic(tc.d, fs); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}
