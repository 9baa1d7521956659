package stepcalc_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/apexpr/stepcalc"
)

func TestSolve(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		result     float64
		normalized string
	}{
		{"scenario", "12+(5*4)-1", 31, "12 + (5 * 4) - 1"},
		{"precedence", "2+3*4", 14, "2 + 3 * 4"},
		{"chain", "8-4/2+1", 7, "8 - 4 / 2 + 1"},
		{"group", "(10+2)*3-5", 31, "(10 + 2) * 3 - 5"},
		{"decimals", "3.14*2+7/2", 9.78, "3.14 * 2 + 7 / 2"},
		{"spaced", " 12 + ( 5 * 4 ) - 1 ", 31, "12 + (5 * 4) - 1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sol, err := stepcalc.Solve(c.src)
			if err != nil {
				t.Fatalf("solving %q: %v", c.src, err)
			}
			if !approx(sol.Result, c.result) {
				t.Errorf("solving %q: want %g, got %g", c.src, c.result, sol.Result)
			}
			if sol.Normalized != c.normalized {
				t.Errorf("solving %q: want normalized %q, got %q", c.src, c.normalized, sol.Normalized)
			}
			if len(sol.Steps) == 0 {
				t.Fatalf("solving %q: no steps", c.src)
			}
			if sol.Steps[0] != sol.Normalized {
				t.Errorf("solving %q: first step %q differs from normalized %q", c.src, sol.Steps[0], sol.Normalized)
			}
			last, err := strconv.ParseFloat(sol.Steps[len(sol.Steps)-1], 64)
			if err != nil {
				t.Fatalf("solving %q: last step %q is not a bare number", c.src, sol.Steps[len(sol.Steps)-1])
			}
			if !approx(last, sol.Result) {
				t.Errorf("solving %q: last step %g differs from result %g", c.src, last, sol.Result)
			}
		})
	}
}

func TestSolveStages(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		stage string
		as    func(error) bool
	}{
		{"invalid character", "1&2", stepcalc.StageLexical, func(err error) bool {
			var e *stepcalc.LexError
			return errors.As(err, &e)
		}},
		{"trailing operator", "1+", stepcalc.StageLexical, func(err error) bool {
			var e *stepcalc.GrammarError
			return errors.As(err, &e)
		}},
		{"adjacent operators", "1++2", stepcalc.StageLexical, func(err error) bool {
			var e *stepcalc.GrammarError
			return errors.As(err, &e)
		}},
		{"unbalanced parens", "(1+2", stepcalc.StageLexical, func(err error) bool {
			var e *stepcalc.GrammarError
			return errors.As(err, &e)
		}},
		{"empty", "", stepcalc.StageLexical, func(err error) bool {
			var e *stepcalc.GrammarError
			return errors.As(err, &e)
		}},
		// "(*5)" passes the adjacency check, which has no rule for an
		// operator after an opening parenthesis, and fails in the parser.
		{"operator after open", "(*5+4)", stepcalc.StageSyntactic, func(err error) bool {
			var e *stepcalc.UnexpectedTokenError
			return errors.As(err, &e)
		}},
		{"division by zero", "1/(2-2)", stepcalc.StageEvaluation, func(err error) bool {
			var e *stepcalc.DivisionByZeroError
			return errors.As(err, &e)
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sol, err := stepcalc.Solve(c.src)
			if err == nil {
				t.Fatalf("solving %q: no error, got %+v", c.src, sol)
			}
			var serr *stepcalc.StageError
			if !errors.As(err, &serr) {
				t.Fatalf("solving %q: error %v carries no stage", c.src, err)
			}
			if serr.Stage != c.stage {
				t.Errorf("solving %q: want stage %q, got %q", c.src, c.stage, serr.Stage)
			}
			if !c.as(err) {
				t.Errorf("solving %q: wrong underlying error %v", c.src, serr.Err)
			}
		})
	}
}

func TestSolveOps(t *testing.T) {
	got, err := stepcalc.SolveOps("8-4/2+1")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"4 / 2 = 2", "8 - 2 = 6", "6 + 1 = 7"}
	if len(got) != len(want) {
		t.Fatalf("want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: want %q, got %q", i, want[i], got[i])
		}
	}
}
