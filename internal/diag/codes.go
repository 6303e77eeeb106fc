package diag

import (
	"fmt"
)

type Code uint16

// DefaultCode is E0069, the code printed when the user accepts the default.
const DefaultCode Code = 69

// MaxCode is the largest code that still prints as four digits.
const MaxCode Code = 9999

// ID returns the rustc-style identifier, zero padded to four digits.
func (c Code) ID() string {
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}

// ParseCode converts a user supplied error number into a Code.
func ParseCode(n int) (Code, error) {
	if n < 0 || n > int(MaxCode) {
		return 0, fmt.Errorf("error number %d out of range [0, %d]", n, MaxCode)
	}
	return Code(n), nil
}
