package finplan

import (
	"fmt"
	"strings"
)

// ValidationErrors collects every violation found while parsing a profile
// document, so a caller can report all of them at once instead of fixing
// them one by one.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid profile document (%d issues):\n  - %s", len(v), strings.Join(msgs, "\n  - "))
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error { return v }

func (v *ValidationErrors) addf(format string, args ...any) {
	*v = append(*v, fmt.Errorf(format, args...))
}

// asError returns nil when no violation was collected.
func (v ValidationErrors) asError() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
