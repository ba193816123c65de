package exprtree

import (
	"fmt"
)

// DivisionByZeroError is returned when evaluating an expression whose divisor
// evaluates to zero.
type DivisionByZeroError struct {
	Dividend string
}

// NewDivisionByZeroError creates a new DivisionByZeroError for the given
// rendered dividend expression.
func NewDivisionByZeroError(dividend string) error {
	return &DivisionByZeroError{Dividend: dividend}
}

func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero evaluating %s/0", e.Dividend)
}

// InvalidOperatorError is returned when evaluating a node whose operator is
// not one of the four arithmetic operators. It indicates a programming error
// in whatever constructed the node; nodes built by the enumerator can never
// trigger it.
type InvalidOperatorError struct {
	Operator Operator
}

// NewInvalidOperatorError creates a new InvalidOperatorError for the given
// operator.
func NewInvalidOperatorError(operator Operator) error {
	return &InvalidOperatorError{Operator: operator}
}

func (e InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator: %d", e.Operator)
}
