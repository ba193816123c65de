package enumerator

import (
	"fmt"
)

// InvalidRangeError is returned when Generate is called with indices outside
// the sequence, or with start after end. It indicates a programming error in
// the caller and is never silently clamped.
type InvalidRangeError struct {
	Start  int
	End    int
	Length int
}

// NewInvalidRangeError creates a new InvalidRangeError for the given indices.
func NewInvalidRangeError(start, end, length int) error {
	return &InvalidRangeError{Start: start, End: end, Length: length}
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d] over sequence of length %d", e.Start, e.End, e.Length)
}

// BudgetExceededError is returned when a budgeted Generate call constructs
// more nodes than its configured limit.
type BudgetExceededError struct {
	Limit int
}

// NewBudgetExceededError creates a new BudgetExceededError with the given
// node limit.
func NewBudgetExceededError(limit int) error {
	return &BudgetExceededError{Limit: limit}
}

func (e BudgetExceededError) Error() string {
	return fmt.Sprintf("node budget of %d exceeded", e.Limit)
}
