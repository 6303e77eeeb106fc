// Package diag defines the diagnostic record that roost fabricates.
//
// A Diagnostic carries a severity, an error code rendered as E%04d, the
// summary message, and a primary source.Span into a virtual file holding the
// line the user typed. The span is what the renderer underlines; the Label is
// printed after the carets.
//
// Package diag does not perform any formatting beyond FormatShort. Rendering
// lives in internal/diagfmt, input collection in internal/prompt.
package diag
