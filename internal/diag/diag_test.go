package diag

import (
	"errors"
	"testing"

	"roost/internal/source"
)

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{0, "E0000"},
		{DefaultCode, "E0069"},
		{308, "E0308"},
		{9999, "E9999"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Fatalf("Code(%d).ID() = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestParseCodeRange(t *testing.T) {
	if _, err := ParseCode(-1); err == nil {
		t.Fatal("expected error for negative code")
	}
	if _, err := ParseCode(10000); err == nil {
		t.Fatal("expected error for five digit code")
	}
	if c, err := ParseCode(69); err != nil || c != DefaultCode {
		t.Fatalf("ParseCode(69) = %v, %v", c, err)
	}
}

func TestParseSeverity(t *testing.T) {
	cases := map[string]Severity{
		"":        SevError,
		"error":   SevError,
		"WARNING": SevWarning,
		"note":    SevInfo,
	}
	for in, want := range cases {
		got, err := ParseSeverity(in)
		if err != nil {
			t.Fatalf("ParseSeverity(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSeverity(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatal("expected error for unknown severity")
	}
}

func TestBuild(t *testing.T) {
	fs := source.NewFileSet()
	d, err := Build(fs, Input{
		Severity: SevError,
		Summary:  "mismatched types",
		Line:     "let x: i32 = \"five\";",
		Start:    13,
		End:      19,
		Message:  "expected `i32`, found `&str`",
		LineNo:   7,
		Path:     "main.rs",
		ErrNum:   308,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Code.ID() != "E0308" {
		t.Fatalf("code = %s, want E0308", d.Code.ID())
	}
	if got := fs.Text(d.Primary); got != "\"five\"" {
		t.Fatalf("primary text = %q, want %q", got, "\"five\"")
	}
	if d.Line != 7 || d.Path != "main.rs" {
		t.Fatalf("location = %s:%d, want main.rs:7", d.Path, d.Line)
	}
	if d.Label != "expected `i32`, found `&str`" {
		t.Fatalf("label = %q", d.Label)
	}

	want := "error E0308 main.rs:7:14 mismatched types"
	if got := FormatShort(d, fs); got != want {
		t.Fatalf("FormatShort = %q, want %q", got, want)
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	fs := source.NewFileSet()
	base := Input{Summary: "s", Line: "abc", Start: 0, End: 1, LineNo: 1, Path: "p", ErrNum: 1}

	empty := base
	empty.Line = ""
	if _, err := Build(fs, empty); !errors.Is(err, ErrEmptyLine) {
		t.Fatalf("empty line: got %v, want ErrEmptyLine", err)
	}

	outside := base
	outside.End = 10
	if _, err := Build(fs, outside); err == nil {
		t.Fatal("expected error for highlight past end of line")
	}

	zero := base
	zero.LineNo = 0
	if _, err := Build(fs, zero); err == nil {
		t.Fatal("expected error for line number 0")
	}
}
