package exprtree

import (
	"fmt"
)

// Evaluate computes the integer value of the expression. Division truncates
// toward zero. A zero divisor is reported as a DivisionByZeroError so callers
// can drop the candidate.
func (n *Node) Evaluate() (int, error) {
	return n.evaluate(nil)
}

// EvaluateWithSentinel computes the integer value of the expression with
// every zero-divisor division evaluating to sentinel instead of failing.
// The substitution happens at the division node and evaluation continues,
// so ((5/0)-1) evaluates to sentinel-1, not sentinel.
func (n *Node) EvaluateWithSentinel(sentinel int) (int, error) {
	return n.evaluate(&sentinel)
}

func (n *Node) evaluate(divisionByZeroSentinel *int) (int, error) {
	if n.Operator == LITERAL {
		return n.Value, nil
	}

	leftVal, err := n.Left.evaluate(divisionByZeroSentinel)
	if err != nil {
		return 0, fmt.Errorf("failed evaluating left subtree: %w", err)
	}
	rightVal, err := n.Right.evaluate(divisionByZeroSentinel)
	if err != nil {
		return 0, fmt.Errorf("failed evaluating right subtree: %w", err)
	}

	switch n.Operator {
	case ADD:
		return leftVal + rightVal, nil
	case SUB:
		return leftVal - rightVal, nil
	case MUL:
		return leftVal * rightVal, nil
	case DIV:
		if rightVal == 0 {
			if divisionByZeroSentinel != nil {
				return *divisionByZeroSentinel, nil
			}
			return 0, NewDivisionByZeroError(n.Left.String())
		}
		return leftVal / rightVal, nil
	default:
		return 0, NewInvalidOperatorError(n.Operator)
	}
}
