package source

import (
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.rs", []byte("let x = 1;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("main.rs", []byte("let y = 2;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "let x = 1;" {
		t.Errorf("Expected first file content to be preserved, got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("<stdin>", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestAddNormalizesNFC(t *testing.T) {
	fs := NewFileSet()

	// "e" + combining acute accent collapses into a single rune
	id := fs.AddVirtual("<stdin>", []byte("cafe\u0301"))
	file := fs.Get(id)

	if string(file.Content) != "caf\u00e9" {
		t.Fatalf("Expected NFC content, got %q", file.Content)
	}
	if file.Flags&FileNormalizedNFC == 0 {
		t.Error("Expected FileNormalizedNFC flag to be set")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := file.GetLine(tc.line); got != tc.want {
			t.Fatalf("GetLine(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestRuneSpanAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.rs", []byte("let ж: i32 = 5;"))

	span, err := fs.RuneSpan(id, 4, 5)
	if err != nil {
		t.Fatalf("RuneSpan: %v", err)
	}
	if span.Start != 4 || span.End != 6 {
		t.Fatalf("span = %+v, want bytes 4-6", span)
	}
	if got := fs.Text(span); got != "ж" {
		t.Fatalf("Text = %q, want %q", got, "ж")
	}

	start, end := fs.Resolve(span)
	if start != (LineCol{Line: 1, Col: 5}) {
		t.Fatalf("start = %+v, want 1:5", start)
	}
	if end != (LineCol{Line: 1, Col: 6}) {
		t.Fatalf("end = %+v, want 1:6", end)
	}
}

func TestRuneSpanBounds(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x", []byte("abc"))

	if span, err := fs.RuneSpan(id, 0, 3); err != nil || span.End-span.Start != 3 {
		t.Fatalf("full span: %+v, %v", span, err)
	}
	if span, err := fs.RuneSpan(id, 3, 3); err != nil || span.Start != span.End {
		t.Fatalf("empty tail span: %+v, %v", span, err)
	}
	if _, err := fs.RuneSpan(id, 1, 4); err == nil {
		t.Fatal("expected out of bounds error")
	}
	if _, err := fs.RuneSpan(id, 2, 1); err == nil {
		t.Fatal("expected inverted range error")
	}
}
