package main

import (
	"fmt"

	"fortio.org/safecast"

	"roost/internal/diag"
	"roost/internal/diagfmt"
	"roost/internal/prof"
	"roost/internal/project"
	"roost/internal/prompt"
	"roost/internal/trace"
)

// settings is roost.toml resolved against the current terminal.
type settings struct {
	render   diagfmt.Options
	color    bool
	useForm  bool
	severity diag.Severity
	defaults prompt.Defaults
	trace    trace.Config
	profile  prof.Config
}

// resolveSettings interprets cfg. Auto switches follow whether stdout is a
// terminal, also when --output redirects the message, so the file receives
// exactly the bytes stdout would have.
func resolveSettings(cfg project.Config, stdoutTTY bool) (settings, error) {
	var st settings

	colorSwitch, err := project.ParseSwitch(cfg.Render.Color)
	if err != nil {
		return st, badConfig("[render].color", err)
	}
	uiSwitch, err := project.ParseSwitch(cfg.Prompt.UI)
	if err != nil {
		return st, badConfig("[prompt].ui", err)
	}
	format, err := diagfmt.ParseFormat(cfg.Render.Format)
	if err != nil {
		return st, badConfig("[render].format", err)
	}
	sev, err := diag.ParseSeverity(cfg.Defaults.Severity)
	if err != nil {
		return st, badConfig("[defaults].severity", err)
	}
	level, err := trace.ParseLevel(cfg.Trace.Level)
	if err != nil {
		return st, badConfig("[trace].level", err)
	}
	traceFormat, err := trace.ParseFormat(cfg.Trace.Format)
	if err != nil {
		return st, badConfig("[trace].format", err)
	}
	tabWidth, err := safecast.Conv[uint8](cfg.Render.TabWidth)
	if err != nil {
		return st, badConfig("[render].tab_width", err)
	}

	st.color = colorSwitch.Resolve(stdoutTTY)
	st.useForm = uiSwitch.Resolve(stdoutTTY)
	st.render = diagfmt.Options{
		Format: format,
		Pretty: diagfmt.PrettyOpts{
			Color:    st.color,
			TabWidth: tabWidth,
		},
	}
	st.severity = sev
	st.defaults = prompt.Defaults{
		Path:   cfg.Defaults.Path,
		LineNo: cfg.Defaults.LineNo,
		ErrNum: cfg.Defaults.ErrNum,
	}
	st.trace = trace.Config{
		Level:      level,
		Format:     traceFormat,
		OutputPath: cfg.Trace.Output,
	}
	st.profile = prof.Config{
		CPUPath: cfg.Trace.CPUProfile,
		MemPath: cfg.Trace.MemProfile,
	}
	return st, nil
}

func badConfig(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", project.ErrInvalidConfig, key, err)
}
