// Package trace is roost's logging layer: levelled, structured events
// written to stderr or a file as text or NDJSON.
//
// # Levels
//
//   - LevelOff: No tracing (default)
//   - LevelError: Only failures
//   - LevelPhase: Run and stage boundaries (collect, render, write)
//   - LevelDetail: Every prompt answer
//   - LevelDebug: Everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeStage, "render", trace.CurrentSpan(ctx))
//	defer span.End("")
package trace
