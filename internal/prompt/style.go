package prompt

import (
	"errors"

	"github.com/fatih/color"
)

// Style colors prompts and error lines. The zero value prints plain text.
type Style struct {
	bold    *color.Color
	hint    *color.Color
	failure *color.Color
	warning *color.Color
}

// NewStyle builds a style with colors forced on or off.
func NewStyle(enabled bool) Style {
	s := Style{
		bold:    color.New(color.Bold),
		hint:    color.New(color.FgBlue, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
	}
	for _, c := range []*color.Color{s.bold, s.hint, s.failure, s.warning} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s Style) paint(c *color.Color, text string) string {
	if c == nil {
		return text
	}
	return c.Sprint(text)
}

// Prompt renders "label (default=x): ".
func (s Style) Prompt(label, def string, hasDefault bool) string {
	out := s.paint(s.bold, label)
	if hasDefault {
		out += s.paint(s.hint, " (default="+def+")")
	}
	return out + s.paint(s.bold, ": ")
}

// Rejection renders the line printed when an answer is refused. Empty
// answers are errors, unparsable ones warnings.
func (s Style) Rejection(err *FieldError) string {
	c := s.warning
	if errors.Is(err, ErrEmpty) {
		c = s.failure
	}
	return s.paint(c, "ERR: "+err.Error())
}
