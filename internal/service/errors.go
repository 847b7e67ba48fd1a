package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/timbang/internal/domain"
)

var (
	// ErrFutureTimestamp indicates a clock event or session end in the future.
	ErrFutureTimestamp = errors.New("timestamp must not be in the future")

	// ErrAlreadyClockedIn indicates the owner already has an open session.
	ErrAlreadyClockedIn = errors.New("already clocked in")

	// ErrNotClockedIn indicates there is no open session to clock out of.
	ErrNotClockedIn = errors.New("not clocked in")

	// ErrEndBeforeStart indicates a session whose end precedes its start.
	ErrEndBeforeStart = domain.ErrEndBeforeStart

	// ErrInvalidPage indicates a negative page number.
	ErrInvalidPage = errors.New("page must be zero or greater")

	// ErrInvalidRange indicates a time range whose start is after its end.
	ErrInvalidRange = errors.New("range start must not be after range end")
)

// ValidationError collects every problem found in an import.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(e.Problems))
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p.Error())
	}
	return b.String()
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

func formatValidationErrors(errs []error) error {
	return &ValidationError{Problems: errs}
}
