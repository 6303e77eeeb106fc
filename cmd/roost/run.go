package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"roost/internal/diag"
	"roost/internal/diagfmt"
	"roost/internal/observ"
	"roost/internal/prof"
	"roost/internal/project"
	"roost/internal/prompt"
	"roost/internal/sink"
	"roost/internal/source"
	"roost/internal/trace"
)

// runEnv is everything a run touches outside of its arguments.
type runEnv struct {
	In        io.Reader
	Out       io.Writer
	ErrOut    io.Writer
	StdoutTTY bool
	Dir       string // where roost.toml lookup starts
}

func runRoost(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	env := runEnv{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		ErrOut:    cmd.ErrOrStderr(),
		StdoutTTY: isTerminal(os.Stdout),
		Dir:       dir,
	}
	// ctrl+c отменяет контекст: оба способа ввода завершаются с кодом 0
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return run(ctx, env, output)
}

// run asks for the error, renders it and delivers it to output (stdout when empty).
func run(ctx context.Context, env runEnv, output string) error {
	cfg, err := project.Discover(env.Dir)
	if err != nil {
		return newExitError(exitCodeBadConfig, err)
	}
	st, err := resolveSettings(cfg, env.StdoutTTY)
	if err != nil {
		if cfg.Path != "" {
			err = fmt.Errorf("%s: %w", cfg.Path, err)
		}
		return newExitError(exitCodeBadConfig, err)
	}

	ctx, cleanup, err := setupTracing(ctx, st.trace, env.ErrOut)
	if err != nil {
		return newExitError(exitCodeBadConfig, err)
	}
	defer cleanup()

	session, err := prof.Start(st.profile)
	if err != nil {
		return newExitError(exitCodeBadConfig, err)
	}
	defer func() {
		if perr := session.Stop(); perr != nil {
			fmt.Fprintf(env.ErrOut, "roost: %v\n", perr)
		}
	}()

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeRun, "roost", 0)
	if cfg.Path != "" {
		span.WithExtra("config", cfg.Path)
	}
	ctx = trace.WithSpan(ctx, span)
	timer := observ.NewTimer()
	defer func() {
		timer.Flush(tracer)
		span.End("")
	}()

	var vals prompt.Values
	err = timer.Measure("collect", func() error {
		var cerr error
		vals, cerr = collectAnswers(ctx, env, st)
		return cerr
	})
	switch {
	case errors.Is(err, prompt.ErrInterrupted):
		return nil
	case errors.Is(err, prompt.ErrInputClosed):
		return newExitError(exitCodeInputClosed, err)
	case err != nil:
		return err
	}

	fs := source.NewFileSet()
	var d diag.Diagnostic
	err = timer.Measure("build", func() error {
		in, berr := inputFromValues(vals, st.severity)
		if berr != nil {
			return berr
		}
		d, berr = diag.Build(fs, in)
		return berr
	})
	if err != nil {
		trace.Error(tracer, "build", err)
		return err
	}

	var data []byte
	err = timer.Measure("render", func() error {
		var rerr error
		data, rerr = diagfmt.Bytes(d, fs, st.render)
		return rerr
	})
	if err != nil {
		trace.Error(tracer, "render", err)
		return err
	}

	err = timer.Measure("write", func() error {
		return sink.Deliver(ctx, data, output, env.Out)
	})
	if err != nil {
		return newExitError(exitCodeOutputFailed, err)
	}
	return nil
}

// inputFromValues converts the collected answers; the inclusive end position
// becomes an exclusive rune offset.
func inputFromValues(vals prompt.Values, sev diag.Severity) (diag.Input, error) {
	ints := make(map[string]int, 4)
	for _, name := range []string{prompt.FieldStart, prompt.FieldEnd, prompt.FieldLineNo, prompt.FieldErrNum} {
		n, err := vals.Int(name)
		if err != nil {
			return diag.Input{}, err
		}
		ints[name] = n
	}
	return diag.Input{
		Severity: sev,
		Summary:  vals.String(prompt.FieldSummary),
		Line:     vals.String(prompt.FieldLine),
		Start:    ints[prompt.FieldStart],
		End:      ints[prompt.FieldEnd] + 1,
		Message:  vals.String(prompt.FieldMessage),
		LineNo:   ints[prompt.FieldLineNo],
		Path:     vals.String(prompt.FieldPath),
		ErrNum:   ints[prompt.FieldErrNum],
	}, nil
}
