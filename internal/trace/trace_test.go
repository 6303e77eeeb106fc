package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"off", "error", "phase", "detail", "debug"} {
		lvl, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if lvl.String() != name {
			t.Fatalf("ParseLevel(%q).String() = %q", name, lvl.String())
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeRun, false},
		{LevelError, ScopeRun, false},
		{LevelPhase, ScopeStage, true},
		{LevelPhase, ScopeField, false},
		{LevelDetail, ScopeField, true},
		{LevelDetail, ScopeDebug, false},
		{LevelDebug, ScopeDebug, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Fatalf("%s.ShouldEmit(%s) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatal("tracer at LevelOff must be disabled")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := WithTracer(context.Background(), tr)

	run := Begin(FromContext(ctx), ScopeRun, "run", 0)
	ctx = WithSpan(ctx, run)
	stage := Begin(FromContext(ctx), ScopeStage, "render", CurrentSpan(ctx))
	stage.WithExtra("format", "pretty").End("")
	Point(FromContext(ctx), ScopeField, "field:summary", "hidden at phase level")
	run.End("ok")

	out := buf.String()
	for _, want := range []string{"\u2192 run", "\u2192 render", "\u2190 render {format=pretty}", "\u2190 run (ok)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("trace output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "field:summary") {
		t.Fatalf("field event leaked at phase level:\n%s", out)
	}
}

func TestErrorEventsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatNDJSON)

	Begin(tr, ScopeRun, "run", 0).End("")
	Error(tr, "write", errors.New("permission denied"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single error event, got %d:\n%s", len(lines), buf.String())
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("invalid NDJSON: %v", err)
	}
	if ev["kind"] != "error" || ev["name"] != "write" || ev["detail"] != "permission denied" {
		t.Fatalf("unexpected event: %v", ev)
	}
}

func TestFromContextDefaultsToNop(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop tracer from empty context")
	}
	if CurrentSpan(context.Background()) != 0 {
		t.Fatal("expected zero span from empty context")
	}
}
