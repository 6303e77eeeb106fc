package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"roost/internal/prompt"
	"roost/internal/trace"
)

func testFields() prompt.FieldSet {
	return prompt.DefaultFields(prompt.Defaults{Path: "<stdin>", LineNo: 1, ErrNum: 69})
}

func typeAndEnter(t *testing.T, m *formModel, text string) tea.Cmd {
	t.Helper()
	if text != "" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestFormCollectsAnswers(t *testing.T) {
	m := newFormModel("roost", testFields(), trace.Nop)

	answers := []string{"mismatched types", "let x: i32 = 5;", "7", "9", "expected u8", "", "main.rs", ""}
	for i, a := range answers {
		typeAndEnter(t, m, a)
		if m.reject != "" {
			t.Fatalf("answer %d (%q) rejected: %s", i, a, m.reject)
		}
	}

	vals, err := m.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if vals[prompt.FieldLine] != "let x: i32 = 5;" || vals[prompt.FieldEnd] != "9" {
		t.Fatalf("unexpected values: %v", vals)
	}
	if vals[prompt.FieldLineNo] != "1" || vals[prompt.FieldErrNum] != "69" {
		t.Fatalf("defaults not applied: %v", vals)
	}
}

func TestFormRejectsEmptyRequiredField(t *testing.T) {
	m := newFormModel("roost", testFields(), trace.Nop)

	typeAndEnter(t, m, "")
	if m.index != 0 {
		t.Fatalf("form advanced past an empty summary")
	}
	if !strings.Contains(m.reject, "cannot be empty") {
		t.Fatalf("reject = %q", m.reject)
	}
	if !strings.Contains(m.View(), "cannot be empty") {
		t.Fatal("rejection not shown in view")
	}

	typeAndEnter(t, m, "ok")
	if m.index != 1 || m.reject != "" {
		t.Fatalf("index = %d, reject = %q", m.index, m.reject)
	}
}

func TestFormShowsDefaultPlaceholderAndRuler(t *testing.T) {
	m := newFormModel("roost", testFields(), trace.Nop)
	typeAndEnter(t, m, "s")
	typeAndEnter(t, m, "abcd")

	if m.input.Placeholder != "0" {
		t.Fatalf("start placeholder = %q, want 0", m.input.Placeholder)
	}
	typeAndEnter(t, m, "")
	if m.input.Placeholder != "3" {
		t.Fatalf("end placeholder = %q, want 3", m.input.Placeholder)
	}
	if !strings.Contains(m.View(), "─") {
		t.Fatal("ruler missing from view")
	}
}

func TestFormKeysStopCollection(t *testing.T) {
	cases := []struct {
		key  tea.KeyType
		want error
	}{
		{tea.KeyCtrlC, prompt.ErrInterrupted},
		{tea.KeyCtrlD, prompt.ErrInputClosed},
		{tea.KeyEsc, prompt.ErrInputClosed},
	}
	for _, tc := range cases {
		m := newFormModel("roost", testFields(), trace.Nop)
		_, cmd := m.Update(tea.KeyMsg{Type: tc.key})
		if cmd == nil {
			t.Fatalf("%v: expected quit command", tc.key)
		}
		if _, err := m.Result(); !errors.Is(err, tc.want) {
			t.Fatalf("%v: Result error = %v, want %v", tc.key, err, tc.want)
		}
	}
}

func TestFormUnfinishedIsInputClosed(t *testing.T) {
	m := newFormModel("roost", testFields(), trace.Nop)
	typeAndEnter(t, m, "s")
	if _, err := m.Result(); !errors.Is(err, prompt.ErrInputClosed) {
		t.Fatalf("Result error = %v, want ErrInputClosed", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 10); got != "abcdef" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("abcdefghijkl", 8); got != "abcde..." {
		t.Fatalf("truncate long = %q", got)
	}
}
