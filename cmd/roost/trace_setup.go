package main

import (
	"context"
	"fmt"
	"io"

	"roost/internal/trace"
)

// setupTracing creates the tracer described by cfg and attaches it to ctx.
// The returned cleanup closes the tracer and reports close errors to errOut.
func setupTracing(ctx context.Context, cfg trace.Config, errOut io.Writer) (context.Context, func(), error) {
	if cfg.Level == trace.LevelOff {
		return trace.WithTracer(ctx, trace.Nop), func() {}, nil
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	cleanup := func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errOut, "trace: close error: %v\n", err)
		}
	}
	return trace.WithTracer(ctx, tracer), cleanup, nil
}
