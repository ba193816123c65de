package enumerator

import (
	"github.com/eriklarko/expression-finder/src/exprtree"
)

// Generator produces every expression tree over a contiguous range of a
// number sequence. The zero budget means unbounded generation; see
// NewWithBudget for capping the exponential blow-up on longer sequences.
type Generator struct {
	maxNodes int
}

// New creates an unbudgeted Generator.
func New() *Generator {
	return &Generator{}
}

// NewWithBudget creates a Generator that aborts with a BudgetExceededError
// once it has constructed more than maxNodes tree nodes in a single Generate
// call. The tree count grows with the Catalan numbers times 4^(n-1), so
// anything beyond low-tens of input elements needs a budget to fail fast
// instead of exhausting memory.
func NewWithBudget(maxNodes int) *Generator {
	return &Generator{maxNodes: maxNodes}
}

// Generate returns every expression tree obtainable from sequence[start..end]
// by picking a split point and a binary operator, combining all left-range
// trees with all right-range trees. A range of one element yields exactly one
// literal tree.
//
// The result order is a contract: split indices ascend, left trees iterate in
// their generation order, right trees nest inside each left tree, and the
// operator cycles innermost in the order exprtree.Operators() declares.
//
// Subtrees are shared between all parent combinations of a split. That is
// safe because trees are never mutated after construction.
func (g *Generator) Generate(sequence []int, start, end int) ([]*exprtree.Node, error) {
	if start < 0 || start > end || end >= len(sequence) {
		return nil, NewInvalidRangeError(start, end, len(sequence))
	}

	run := &generation{maxNodes: g.maxNodes}
	return run.trees(sequence, start, end)
}

// Generate enumerates sequence[start..end] with an unbudgeted Generator.
func Generate(sequence []int, start, end int) ([]*exprtree.Node, error) {
	return New().Generate(sequence, start, end)
}

// generation tracks the node count of one Generate call.
type generation struct {
	maxNodes int
	built    int
}

func (gn *generation) trees(sequence []int, start, end int) ([]*exprtree.Node, error) {
	// Base case: a single element is one literal tree
	if start == end {
		if err := gn.countNode(); err != nil {
			return nil, err
		}
		return []*exprtree.Node{exprtree.NewLiteral(sequence[start])}, nil
	}

	var result []*exprtree.Node
	operators := exprtree.Operators()
	for i := start; i < end; i++ {
		leftTrees, err := gn.trees(sequence, start, i)
		if err != nil {
			return nil, err
		}
		rightTrees, err := gn.trees(sequence, i+1, end)
		if err != nil {
			return nil, err
		}

		for _, left := range leftTrees {
			for _, right := range rightTrees {
				for _, op := range operators {
					if err := gn.countNode(); err != nil {
						return nil, err
					}
					result = append(result, exprtree.NewBinary(op, left, right))
				}
			}
		}
	}

	return result, nil
}

func (gn *generation) countNode() error {
	gn.built++
	if gn.maxNodes > 0 && gn.built > gn.maxNodes {
		return NewBudgetExceededError(gn.maxNodes)
	}
	return nil
}
