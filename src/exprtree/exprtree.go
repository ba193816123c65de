package exprtree

import (
	"strconv"
)

type Operator int

const (
	LITERAL Operator = iota
	ADD
	SUB
	MUL
	DIV
)

// Operators returns the binary operators in their declared order. The order is
// part of the package contract: the enumerator combines subtrees with the
// operators in exactly this order, which fixes the order of search results.
func Operators() []Operator {
	return []Operator{ADD, SUB, MUL, DIV}
}

var operatorSymbols = map[Operator]string{
	ADD: "+",
	SUB: "-",
	MUL: "*",
	DIV: "/",
}

// Symbol returns the single-character rendering of a binary operator, or ""
// for LITERAL and unknown operators.
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

// Node is one node of an arithmetic expression tree. A node is either a
// literal holding Value, or a binary operator over Left and Right.
// Nodes are never mutated after construction, so a subtree may safely be
// shared by several parents.
type Node struct {
	Operator Operator
	Value    int
	Left     *Node
	Right    *Node
}

// NewLiteral creates a leaf node holding the given value.
// Example usage:
//
//	two := exprtree.NewLiteral(2)
//	three := exprtree.NewLiteral(3)
//	sum := exprtree.NewBinary(exprtree.ADD, two, three)
//	fmt.Println(sum) // Output: (2+3)
func NewLiteral(value int) *Node {
	return &Node{
		Operator: LITERAL,
		Value:    value,
	}
}

// NewBinary creates a node applying op to the left and right subtrees. It does
// not validate op; Evaluate reports an InvalidOperatorError if op is not one
// of the four arithmetic operators.
func NewBinary(op Operator, left, right *Node) *Node {
	return &Node{
		Operator: op,
		Left:     left,
		Right:    right,
	}
}

// String renders the expression fully parenthesized with no spaces, e.g.
// "((2+3)*4)". Parentheses are emitted for every binary node regardless of
// operator precedence.
func (n *Node) String() string {
	if n.Operator == LITERAL {
		return strconv.Itoa(n.Value)
	}
	return "(" + n.Left.String() + n.Operator.Symbol() + n.Right.String() + ")"
}
