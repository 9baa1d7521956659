package stepcalc

// Pipeline stage names used by StageError.
const (
	StageLexical    = "lexical"
	StageSyntactic  = "syntactic"
	StageEvaluation = "evaluation"
)

// StageError tags an error with the pipeline stage that produced it.
type StageError struct {
	// Stage is one of the Stage constants.
	Stage string
	// Err is the underlying error.
	Err error
}

func (err *StageError) Error() string {
	return err.Stage + ": " + err.Err.Error()
}

func (err *StageError) Unwrap() error {
	return err.Err
}

// Solution is the result of running one expression through the pipeline.
type Solution struct {
	// Result is the numeric value of the expression.
	Result float64
	// Steps is the substitution trace from the printed input down to the
	// bare result.
	Steps []string
	// Normalized is the minimally parenthesized printed form of the parsed
	// input.
	Normalized string
}

// Solve runs an already-corrected expression through the whole pipeline:
// tokenize, validate, parse, evaluate, and trace. Every stage fails fast; the
// first error is tagged with its stage and returned with no partial result.
// Validation failure short-circuits before any parsing is attempted.
func Solve(expr string) (*Solution, error) {
	ast, err := parseChecked(expr)
	if err != nil {
		return nil, err
	}
	v, err := Evaluate(ast)
	if err != nil {
		return nil, &StageError{Stage: StageEvaluation, Err: err}
	}
	steps, err := SolveSteps(ast)
	if err != nil {
		return nil, &StageError{Stage: StageEvaluation, Err: err}
	}
	return &Solution{Result: v, Steps: steps, Normalized: ExprString(ast)}, nil
}

// SolveOps is like Solve but produces the operation-level trace instead of a
// full Solution.
func SolveOps(expr string) ([]string, error) {
	ast, err := parseChecked(expr)
	if err != nil {
		return nil, err
	}
	steps, err := OpSteps(ast)
	if err != nil {
		return nil, &StageError{Stage: StageEvaluation, Err: err}
	}
	return steps, nil
}

// parseChecked runs the lexical and syntactic stages with stage tagging.
func parseChecked(expr string) (Node, error) {
	toks, err := Tokenize(expr)
	if err != nil {
		return nil, &StageError{Stage: StageLexical, Err: err}
	}
	if err := checkGrammar(toks); err != nil {
		return nil, &StageError{Stage: StageLexical, Err: err}
	}
	ast, err := NewParser(toks).Parse()
	if err != nil {
		return nil, &StageError{Stage: StageSyntactic, Err: err}
	}
	return ast, nil
}
