package main

import (
	"context"
	"io"

	"roost/internal/prompt"
	"roost/internal/ui"
)

const formTitle = "roost: describe the error"

// collectAnswers asks the questions either in the bubbletea form or line by
// line over the plain streams.
func collectAnswers(ctx context.Context, env runEnv, st settings) (prompt.Values, error) {
	fields := prompt.DefaultFields(st.defaults)
	if st.useForm {
		return ui.RunForm(ctx, formTitle, fields, env.In, env.Out)
	}

	c := prompt.NewCollector(env.In, env.Out, env.ErrOut, prompt.NewStyle(st.color))
	vals, err := c.Collect(ctx, fields)
	if err != nil {
		return vals, err
	}
	// пустая строка между вопросами и сообщением
	if _, err := io.WriteString(env.Out, "\n"); err != nil {
		return vals, err
	}
	return vals, nil
}
