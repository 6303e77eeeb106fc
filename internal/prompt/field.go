package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInputClosed is returned when the input ends before every field is answered.
	ErrInputClosed = errors.New("input closed before all fields were collected")
	// ErrInterrupted is returned when the user aborts collection with ctrl+c.
	ErrInterrupted = errors.New("interrupted")
	// ErrEmpty rejects an empty answer to a field without a default.
	ErrEmpty = errors.New("cannot be empty")
	// ErrInvalid rejects an answer that does not parse or is out of bounds.
	ErrInvalid = errors.New("is not valid")
)

// Kind is the type of value a field accepts.
type Kind uint8

const (
	KindText Kind = iota
	KindInt
)

// Values maps field names to the collected answers.
type Values map[string]string

// String returns the answer for name, or "".
func (v Values) String(name string) string {
	return v[name]
}

// Int parses the answer for name.
func (v Values) Int(name string) (int, error) {
	raw, ok := v[name]
	if !ok {
		return 0, fmt.Errorf("field %q was not collected", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}
	return n, nil
}

// Field is one question of the form.
type Field struct {
	Name  string
	Label string
	Kind  Kind
	// Default computes the answer used for empty input. ok=false means the
	// field is required.
	Default func(Values) (value string, ok bool)
	// Bounds limits KindInt answers, inclusive. ok=false means unbounded.
	Bounds func(Values) (lo, hi int, ok bool)
	// Normalize rewrites a non-empty answer before it is validated.
	Normalize func(string) string
	// Ruler asks the front end to print a column guide under the answer.
	Ruler bool
}

// DefaultValue reports the default for f given the answers so far.
func (f Field) DefaultValue(vals Values) (string, bool) {
	if f.Default == nil {
		return "", false
	}
	return f.Default(vals)
}

// Accept validates raw as the answer to f and returns the value to store.
// Trailing whitespace is dropped; leading whitespace is kept because it is
// part of a code line.
func (f Field) Accept(raw string, vals Values) (string, error) {
	raw = strings.TrimRight(raw, " \t\r\n")
	if raw == "" {
		if def, ok := f.DefaultValue(vals); ok {
			return def, nil
		}
		return "", &FieldError{Field: f.Label, Err: ErrEmpty}
	}
	if f.Normalize != nil {
		raw = f.Normalize(raw)
	}
	if f.Kind != KindInt {
		return raw, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", &FieldError{Field: f.Label, Raw: raw, Err: ErrInvalid}
	}
	if f.Bounds != nil {
		if lo, hi, ok := f.Bounds(vals); ok && (n < lo || n > hi) {
			return "", &FieldError{Field: f.Label, Raw: raw, Err: ErrInvalid, Lo: lo, Hi: hi, Bounded: true}
		}
	}
	return strconv.Itoa(n), nil
}

// FieldError explains why an answer was rejected.
type FieldError struct {
	Field   string
	Raw     string
	Err     error
	Lo, Hi  int
	Bounded bool
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrEmpty) {
		return fmt.Sprintf("field '%s' cannot be empty", e.Field)
	}
	if e.Bounded {
		return fmt.Sprintf("'%s' is not a valid %s (expected %d..%d)", e.Raw, e.Field, e.Lo, e.Hi)
	}
	return fmt.Sprintf("'%s' is not a valid %s", e.Raw, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldSet is the ordered list of questions.
type FieldSet []Field
