package main

import (
	"errors"
	"testing"

	"roost/internal/diag"
	"roost/internal/diagfmt"
	"roost/internal/project"
)

func TestResolveSettingsSwitches(t *testing.T) {
	cases := []struct {
		name      string
		color     string
		ui        string
		tty       bool
		wantColor bool
		wantForm  bool
	}{
		{"auto on terminal", "auto", "auto", true, true, true},
		{"auto off terminal", "auto", "auto", false, false, false},
		{"forced on", "on", "on", false, true, true},
		{"forced off", "off", "off", true, false, false},
		{"always and never", "always", "never", false, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := project.Default()
			cfg.Render.Color = tc.color
			cfg.Prompt.UI = tc.ui

			st, err := resolveSettings(cfg, tc.tty)
			if err != nil {
				t.Fatalf("resolveSettings: %v", err)
			}
			if st.color != tc.wantColor || st.render.Pretty.Color != tc.wantColor {
				t.Fatalf("color = %v/%v, want %v", st.color, st.render.Pretty.Color, tc.wantColor)
			}
			if st.useForm != tc.wantForm {
				t.Fatalf("useForm = %v, want %v", st.useForm, tc.wantForm)
			}
		})
	}
}

func TestResolveSettingsDefaults(t *testing.T) {
	st, err := resolveSettings(project.Default(), false)
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if st.render.Format != diagfmt.FormatPretty || st.render.Pretty.TabWidth != 4 {
		t.Fatalf("render = %+v", st.render)
	}
	if st.severity != diag.SevError {
		t.Fatalf("severity = %v", st.severity)
	}
	if st.defaults.Path != "<stdin>" || st.defaults.LineNo != 1 || st.defaults.ErrNum != 69 {
		t.Fatalf("defaults = %+v", st.defaults)
	}
}

func TestResolveSettingsRejects(t *testing.T) {
	cases := map[string]func(*project.Config){
		"color":    func(c *project.Config) { c.Render.Color = "sometimes" },
		"format":   func(c *project.Config) { c.Render.Format = "xml" },
		"severity": func(c *project.Config) { c.Defaults.Severity = "fatal" },
		"level":    func(c *project.Config) { c.Trace.Level = "loud" },
		"trace":    func(c *project.Config) { c.Trace.Format = "yaml" },
	}
	for name, mutate := range cases {
		cfg := project.Default()
		mutate(&cfg)
		if _, err := resolveSettings(cfg, false); !errors.Is(err, project.ErrInvalidConfig) {
			t.Fatalf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}
