package finder

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/eriklarko/expression-finder/src/enumerator"
	"github.com/eriklarko/expression-finder/src/exprtree"
)

// Policy decides what happens to a candidate expression that divides by zero.
type Policy int

const (
	// ExcludeDivisionByZero silently drops candidates that divide by zero.
	// This is the default.
	ExcludeDivisionByZero Policy = iota

	// SentinelDivisionByZero makes a division by zero evaluate to
	// DivisionSentinel at the division node, with evaluation continuing
	// around it, so ((5/0)-1) is DivisionSentinel-1. A target equal to the
	// sentinel will then match expressions like (5/0), which is almost
	// never what anyone wants, but it is the historical behavior and some
	// callers depend on it.
	SentinelDivisionByZero
)

// DivisionSentinel is the value a division by zero evaluates to under
// SentinelDivisionByZero.
const DivisionSentinel = math.MaxInt

type Finder struct {
	policy    Policy
	generator *enumerator.Generator
}

// New creates a Finder with the default division policy and no node budget.
func New() *Finder {
	return &Finder{
		generator: enumerator.New(),
	}
}

// SetPolicy changes how the finder treats candidates that divide by zero.
func (f *Finder) SetPolicy(policy Policy) {
	f.policy = policy
}

// SetBudget caps the number of tree nodes a single search may build. Searches
// that would exceed the cap fail with enumerator.BudgetExceededError instead
// of exhausting memory. A budget of 0 removes the cap.
func (f *Finder) SetBudget(maxNodes int) {
	if maxNodes > 0 {
		f.generator = enumerator.NewWithBudget(maxNodes)
	} else {
		f.generator = enumerator.New()
	}
}

// Search enumerates every way to combine the sequence with the four
// arithmetic operators and every parenthesization, and reports the ones that
// evaluate to target. Matches appear in enumeration order; distinct trees
// that happen to render identically are all kept.
func (f *Finder) Search(sequence []int, target int) (*Report, error) {
	if len(sequence) == 0 {
		return nil, NewEmptyInputError()
	}

	slog.Debug("searching for expressions",
		"sequence", sequence,
		"target", target,
		"policy", f.policy,
	)

	trees, err := f.generator.Generate(sequence, 0, len(sequence)-1)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate expressions over %v: %w", sequence, err)
	}

	report := &Report{}
	for _, tree := range trees {
		var value int
		var err error
		if f.policy == SentinelDivisionByZero {
			value, err = tree.EvaluateWithSentinel(DivisionSentinel)
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate candidate %s: %w", tree, err)
			}
		} else {
			value, err = tree.Evaluate()

			var errDivZero *exprtree.DivisionByZeroError
			if errors.As(err, &errDivZero) {
				report.RecordExcluded()
				continue
			} else if err != nil {
				// anything that isn't a division by zero is a programming
				// error and aborts the whole search
				return nil, fmt.Errorf("failed to evaluate candidate %s: %w", tree, err)
			}
		}

		report.RecordCandidate(tree.String(), value == target)
	}

	return report, nil
}

// FindExpressions runs a search with the default policy and returns only the
// matching expression strings.
// Example usage:
//
//	matches, err := finder.FindExpressions([]int{2, 3, 4}, 20)
//	if err != nil {
//		log.Fatalf("search failed: %v", err)
//	}
//	fmt.Println(matches) // Output: [((2+3)*4)]
func FindExpressions(sequence []int, target int) ([]string, error) {
	report, err := New().Search(sequence, target)
	if err != nil {
		return nil, err
	}
	return report.Matches, nil
}
