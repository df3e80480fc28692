package customization

import (
	"errors"
	"fmt"
)

// ErrTooManyCombinations is returned by the margin analyzer when the
// configuration count exceeds MaxConfigurations.
var ErrTooManyCombinations = errors.New("too many customization combinations to analyze")

// ValidationError rejects one proposed set of selections.
// The reason is human readable and safe to show to the ordering UI.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalidf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// StructuralError rejects a malformed set of draft rules.
// Surfaced when saving rules in the editor, never during ordering.
type StructuralError struct {
	Category string
	Reason   string
}

func (e *StructuralError) Error() string {
	if e.Category == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Reason)
}
