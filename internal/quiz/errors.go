package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidSnapshot reports a snapshot that cannot be restored against a catalog.
var ErrInvalidSnapshot = errors.New("invalid session snapshot")

// PreconditionViolation is the panic value raised when a caller breaks the
// session contract, such as answering after completion or recording an
// answer that does not fit the current question.
type PreconditionViolation struct {
	Op     string
	Reason string
}

// Error returns a readable message for the violation.
func (v PreconditionViolation) Error() string {
	return fmt.Sprintf("quiz: %s: %s", v.Op, v.Reason)
}

func violate(op, format string, args ...any) {
	panic(PreconditionViolation{Op: op, Reason: fmt.Sprintf(format, args...)})
}
