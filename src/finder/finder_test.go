package finder_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/eriklarko/expression-finder/src/enumerator"
	"github.com/eriklarko/expression-finder/src/exprtree"
	"github.com/eriklarko/expression-finder/src/finder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindExpressions_TwoThreeFour(t *testing.T) {
	matches, err := finder.FindExpressions([]int{2, 3, 4}, 20)
	require.NoError(t, err)

	// ((2+3)*4) is the only way to 20 with these numbers
	assert.Equal(t, []string{"((2+3)*4)"}, matches)
}

func TestFindExpressions_OnePlusOne(t *testing.T) {
	matches, err := finder.FindExpressions([]int{1, 1}, 2)
	require.NoError(t, err)

	// (1-1), (1*1) and (1/1) evaluate to 0 and 1, leaving only the sum
	assert.Equal(t, []string{"(1+1)"}, matches)
}

func TestFindExpressions_SingleElement(t *testing.T) {
	t.Run("matching", func(t *testing.T) {
		matches, err := finder.FindExpressions([]int{7}, 7)
		require.NoError(t, err)
		assert.Equal(t, []string{"7"}, matches)
	})

	t.Run("not matching", func(t *testing.T) {
		matches, err := finder.FindExpressions([]int{7}, 8)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestFindExpressions_EmptyInput(t *testing.T) {
	matches, err := finder.FindExpressions([]int{}, 0)

	assert.Nil(t, matches)
	var errEmpty *finder.EmptyInputError
	assert.ErrorAs(t, err, &errEmpty)
}

func TestFindExpressions_NoMatchesIsNotAnError(t *testing.T) {
	matches, err := finder.FindExpressions([]int{1, 1}, 1000)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindExpressions_EquallyValuedTreesAreAllKept(t *testing.T) {
	matches, err := finder.FindExpressions([]int{2, 2, 2}, 6)
	require.NoError(t, err)

	// four distinct trees reach 6, and they appear in enumeration order
	assert.Equal(
		t,
		[]string{"(2+(2+2))", "(2+(2*2))", "((2+2)+2)", "((2*2)+2)"},
		matches,
	)
}

func TestFindExpressions_Deterministic(t *testing.T) {
	first, err := finder.FindExpressions([]int{1, 2, 3, 4}, 10)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := finder.FindExpressions([]int{1, 2, 3, 4}, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearch_DivisionPolicies(t *testing.T) {
	t.Run("exclusion drops the candidate for every target", func(t *testing.T) {
		for _, target := range []int{0, 5, finder.DivisionSentinel} {
			matches, err := finder.FindExpressions([]int{5, 0}, target)
			require.NoError(t, err)
			assert.NotContains(t, matches, "(5/0)", "target %d", target)
		}
	})

	t.Run("sentinel makes the division match the sentinel target", func(t *testing.T) {
		f := finder.New()
		f.SetPolicy(finder.SentinelDivisionByZero)

		report, err := f.Search([]int{5, 0}, finder.DivisionSentinel)
		require.NoError(t, err)

		assert.Equal(t, []string{"(5/0)"}, report.Matches)
		assert.Equal(t, 0, report.Excluded)
	})

	t.Run("sentinel is substituted at the division node", func(t *testing.T) {
		f := finder.New()
		f.SetPolicy(finder.SentinelDivisionByZero)

		// the surrounding subtraction keeps computing on top of the
		// substituted division, as the historical behavior did
		report, err := f.Search([]int{5, 0, 1}, finder.DivisionSentinel-1)
		require.NoError(t, err)

		assert.Equal(t, []string{"((5/0)-1)"}, report.Matches)
	})

	t.Run("sentinel does not leak into other targets", func(t *testing.T) {
		f := finder.New()
		f.SetPolicy(finder.SentinelDivisionByZero)

		report, err := f.Search([]int{5, 0}, 5)
		require.NoError(t, err)

		// (5+0) and (5-0)
		assert.Equal(t, []string{"(5+0)", "(5-0)"}, report.Matches)
	})
}

func TestSearch_Report(t *testing.T) {
	report, err := finder.New().Search([]int{2, 3, 4}, 20)
	require.NoError(t, err)

	assert.True(t, report.HasMatches())
	assert.Equal(t, []string{"((2+3)*4)"}, report.Matches)
	// 32 trees, one of which divides by zero: (2/(3/4))
	assert.Equal(t, 31, report.Candidates)
	assert.Equal(t, 1, report.Excluded)
}

func TestSearch_BudgetExceeded(t *testing.T) {
	f := finder.New()
	f.SetBudget(10)

	report, err := f.Search([]int{1, 2, 3, 4, 5}, 15)

	assert.Nil(t, report)
	var errBudget *enumerator.BudgetExceededError
	assert.ErrorAs(t, err, &errBudget)
}

func TestFindExpressions_ResultsParseBackToTheTarget(t *testing.T) {
	tests := []struct {
		sequence []int
		target   int
	}{
		{sequence: []int{2, 3, 4}, target: 20},
		{sequence: []int{1, 2, 3, 4}, target: 10},
		{sequence: []int{5, 0}, target: 5},
		{sequence: []int{1, 1, 1, 1}, target: 1},
		{sequence: []int{6, 2, 4}, target: 0},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%v->%d", test.sequence, test.target), func(t *testing.T) {
			matches, err := finder.FindExpressions(test.sequence, test.target)
			require.NoError(t, err)
			require.NotEmpty(t, matches)

			for _, match := range matches {
				tree := parseExpression(t, match)

				value, err := tree.Evaluate()
				require.NoError(t, err)
				assert.Equal(t, test.target, value, "%s evaluated wrong", match)

				assert.Equal(
					t,
					test.sequence,
					collectLiterals(tree),
					"%s doesn't use every input element exactly once in order", match,
				)
			}
		})
	}
}

// parseExpression parses the fully parenthesized grammar the finder emits:
// either a decimal integer or "(" expression operator expression ")".
func parseExpression(t *testing.T, input string) *exprtree.Node {
	t.Helper()
	p := &parser{t: t, input: input}
	tree := p.expression()
	require.Equal(t, len(input), p.pos, "trailing garbage in %q", input)
	return tree
}

type parser struct {
	t     *testing.T
	input string
	pos   int
}

func (p *parser) expression() *exprtree.Node {
	if p.input[p.pos] != '(' {
		return exprtree.NewLiteral(p.number())
	}

	p.pos++ // consume '('
	left := p.expression()
	op := p.operator()
	right := p.expression()
	require.Equal(p.t, byte(')'), p.input[p.pos], "unbalanced parentheses in %q", p.input)
	p.pos++ // consume ')'

	return exprtree.NewBinary(op, left, right)
}

func (p *parser) number() int {
	start := p.pos
	if p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}

	value, err := strconv.Atoi(p.input[start:p.pos])
	require.NoError(p.t, err, "invalid number in %q", p.input)
	return value
}

func (p *parser) operator() exprtree.Operator {
	symbol := p.input[p.pos]
	p.pos++

	for _, op := range exprtree.Operators() {
		if op.Symbol() == string(symbol) {
			return op
		}
	}
	p.t.Fatalf("unknown operator %q in %q", symbol, p.input)
	return exprtree.LITERAL
}

func collectLiterals(tree *exprtree.Node) []int {
	if tree.Operator == exprtree.LITERAL {
		return []int{tree.Value}
	}
	return append(collectLiterals(tree.Left), collectLiterals(tree.Right)...)
}
