// Package stepcalc turns a noisy arithmetic expression string into a verified
// result, a step-by-step derivation, and re-renderable forms.
//
// The input is a plain ASCII expression as it comes out of an upstream
// correction pass, e.g. "12+(5*4)-1". Tokenize splits it into tokens and
// Validate checks that adjacent tokens can legally follow each other before
// any parsing happens. A Parser builds an AST with the usual precedence and
// left-to-right associativity, Evaluate computes the result, and SolveSteps
// produces the expression collapsing toward its answer one subtree at a time:
//
//	12 + (5 * 4) - 1
//	12 + (20) - 1
//	12 + 20 - 1
//	32 - 1
//	31
//
// ExprString prints an AST back to a minimally parenthesized string, and
// ToLaTeX and ToMathML render such a string for display. Solve wires the
// whole pipeline together.
package stepcalc
