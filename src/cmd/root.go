package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/eriklarko/expression-finder/src/environment"
	"github.com/eriklarko/expression-finder/src/finder"
	"github.com/eriklarko/expression-finder/src/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCommand builds the expression-finder command. Tests construct their
// own instance so flag state never leaks between runs.
func NewRootCommand() *cobra.Command {
	var (
		target    int
		policy    = policyValue(finder.ExcludeDivisionByZero)
		maxNodes  int
		noSummary bool
	)

	cmd := &cobra.Command{
		Use:   "expression-finder [flags] number [number...]",
		Short: "Find arithmetic expressions over a number sequence that hit a target value",
		Long: `expression-finder tries every way to combine the given numbers, in order,
with +, -, * and / and every possible parenthesization, and prints each
expression that evaluates to the target, one per line.

Negative numbers must come after a "--" terminator so they are not read as
flags.`,
		Example: `  expression-finder --target 20 2 3 4
  expression-finder --target -6 -- -2 3`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sequence, err := parseSequence(args)
			if err != nil {
				return err
			}

			if noSummary {
				environment.ForceSetIsInteractive(false)
			}

			f := finder.New()
			f.SetPolicy(finder.Policy(policy))
			f.SetBudget(maxNodes)

			report, err := f.Search(sequence, target)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			ui := tui.New()
			ui.SetOutput(cmd.OutOrStdout())
			ui.PrintExpressions(report.Matches)
			if environment.IsInteractive() {
				ui.PrintSummary(report)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&target, "target", "t", 0, "value the expressions must evaluate to")
	cmd.MarkFlagRequired("target")
	cmd.Flags().Var(&policy, "policy", `division-by-zero policy, "exclude" or "sentinel"`)
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "abort after building this many tree nodes, 0 means no limit")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "suppress the search summary even on a terminal")

	return cmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseSequence(args []string) ([]int, error) {
	sequence := make([]int, 0, len(args))
	for _, arg := range args {
		number, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse number '%s': %w", arg, err)
		}
		sequence = append(sequence, number)
	}
	return sequence, nil
}

// policyValue makes finder.Policy usable as a command line flag.
type policyValue finder.Policy

var _ pflag.Value = (*policyValue)(nil)

func (p *policyValue) String() string {
	if finder.Policy(*p) == finder.SentinelDivisionByZero {
		return "sentinel"
	}
	return "exclude"
}

func (p *policyValue) Set(value string) error {
	switch value {
	case "exclude":
		*p = policyValue(finder.ExcludeDivisionByZero)
	case "sentinel":
		*p = policyValue(finder.SentinelDivisionByZero)
	default:
		return fmt.Errorf("invalid policy '%s', expected \"exclude\" or \"sentinel\"", value)
	}
	return nil
}

func (p *policyValue) Type() string {
	return "policy"
}
