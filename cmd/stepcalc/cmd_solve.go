package main

import (
	"fmt"

	"github.com/apexpr/stepcalc"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	var (
		raw       bool
		showSteps bool
		showOps   bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "solve <expression> [expression ...]",
		Short: "Solve expressions and print their results",
		Long: `Solve arithmetic expressions and print their results.

Each argument is corrected for common OCR misreadings (use --raw to skip
that), then tokenized, validated, parsed, and evaluated. With --steps the
full substitution trace is printed, one snapshot per line. With --format the
normalized expression is also rendered as latex, mathml, or plain text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target stepcalc.Format
			if format != "" {
				var err error
				target, err = stepcalc.ParseFormat(format)
				if err != nil {
					return err
				}
			}
			for _, arg := range args {
				expr := arg
				if !raw {
					expr = stepcalc.Correct(arg)
				}
				sol, err := stepcalc.Solve(expr)
				if err != nil {
					return fmt.Errorf("solve %q: %w", arg, err)
				}
				switch {
				case showSteps:
					for _, step := range sol.Steps {
						fmt.Println(stepcalc.FormatStep(step))
					}
				case showOps:
					ops, err := stepcalc.SolveOps(expr)
					if err != nil {
						return fmt.Errorf("solve %q: %w", arg, err)
					}
					for _, step := range ops {
						fmt.Println(stepcalc.FormatStep(step))
					}
				default:
					fmt.Printf("%s = %g\n", sol.Normalized, sol.Result)
				}
				if format != "" {
					fmt.Println(stepcalc.Render(sol.Normalized, target))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "skip OCR correction of the input")
	cmd.Flags().BoolVarP(&showSteps, "steps", "s", false, "print the substitution trace")
	cmd.Flags().BoolVar(&showOps, "ops", false, "print operation-level steps instead of snapshots")
	cmd.Flags().StringVarP(&format, "format", "f", "", "also render the normalized form (latex, mathml, plain)")

	return cmd
}
