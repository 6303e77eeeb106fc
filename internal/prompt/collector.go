package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"roost/internal/trace"
)

// Collector asks a FieldSet line by line over plain streams.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	style  Style
}

// NewCollector reads answers from in, writes prompts and rulers to out and
// rejections to errOut.
func NewCollector(in io.Reader, out, errOut io.Writer, style Style) *Collector {
	return &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		style:  style,
	}
}

// Collect asks every field in order. On error the answers collected so far
// are returned alongside it. Cancelling ctx, which is how ctrl+c arrives,
// stops collection with ErrInterrupted.
func (c *Collector) Collect(ctx context.Context, fields FieldSet) (Values, error) {
	t := trace.FromContext(ctx)
	vals := make(Values, len(fields))
	for _, f := range fields {
		if ctx.Err() != nil {
			return vals, ErrInterrupted
		}
		v, err := c.ask(ctx, t, f, vals)
		if err != nil {
			return vals, err
		}
		vals[f.Name] = v
		trace.Point(t, trace.ScopeField, "field:"+f.Name, v)

		if f.Ruler {
			if err := WriteRuler(c.out, v); err != nil {
				return vals, fmt.Errorf("write ruler: %w", err)
			}
		}
	}
	return vals, nil
}

func (c *Collector) ask(ctx context.Context, t trace.Tracer, f Field, vals Values) (string, error) {
	for {
		def, hasDefault := f.DefaultValue(vals)
		if _, err := io.WriteString(c.out, c.style.Prompt(f.Label, def, hasDefault)); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}

		raw, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		trace.Point(t, trace.ScopeDebug, "input:"+f.Name, raw)

		v, err := f.Accept(raw, vals)
		if err == nil {
			return v, nil
		}
		var fe *FieldError
		if !errors.As(err, &fe) {
			return "", err
		}
		fmt.Fprintln(c.errOut, c.style.Rejection(fe))
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to be cancelled. A blocked
// read cannot be aborted, so it is left to finish in the background.
func (c *Collector) readLine(ctx context.Context) (string, error) {
	done := make(chan lineResult, 1)
	go func() {
		line, err := c.readRaw()
		done <- lineResult{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case r := <-done:
		return r.line, r.err
	}
}

// readRaw returns the next line; a final line without '\n' still counts.
func (c *Collector) readRaw() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
			return line, nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}
