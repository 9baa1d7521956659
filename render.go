package stepcalc

import (
	"strconv"
	"strings"
)

// Format selects an output form for Render.
type Format int

const (
	// LaTeX renders math-mode LaTeX. It is the default.
	LaTeX Format = iota
	// MathML renders presentation MathML.
	MathML
	// Plain returns the expression string unchanged.
	Plain
)

// ParseFormat maps a format name to a Format. The empty string selects LaTeX.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "latex", "":
		return LaTeX, nil
	case "mathml":
		return MathML, nil
	case "plain":
		return Plain, nil
	}
	return 0, &UnknownFormatError{Name: s}
}

// UnknownFormatError indicates a format name that ParseFormat does not know.
type UnknownFormatError struct {
	Name string
}

func (err *UnknownFormatError) Error() string {
	return "unknown output format " + strconv.Quote(err.Name)
}

// Render renders a normalized expression string in the requested format.
func Render(expr string, format Format) string {
	switch format {
	case MathML:
		return ToMathML(expr)
	case Plain:
		return expr
	default:
		return ToLaTeX(expr)
	}
}

// renderTokens splits a normalized expression into number runs and
// single-character operator or parenthesis tokens. It is deliberately
// independent of the lexer so that rendering works on any normalized string
// without another validation pass.
func renderTokens(expr string) []string {
	src := stripSpace(expr)
	var toks []string
	start := -1
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '+', '-', '*', '/', '(', ')':
			if start >= 0 {
				toks = append(toks, src[start:i])
				start = -1
			}
			toks = append(toks, src[i:i+1])
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		toks = append(toks, src[start:])
	}
	return toks
}

// ToLaTeX converts a normalized expression string to math-mode LaTeX.
// Multiplication and division become \times and \div, parentheses become
// \left( and \right), and a decimal point inside a number becomes the {,}
// decimal-comma marker.
func ToLaTeX(expr string) string {
	var b strings.Builder
	for _, tok := range renderTokens(expr) {
		switch tok {
		case "+", "-":
			b.WriteString(" " + tok + " ")
		case "*":
			b.WriteString(` \times `)
		case "/":
			b.WriteString(` \div `)
		case "(":
			b.WriteString(`\left(`)
		case ")":
			b.WriteString(`\right)`)
		default:
			b.WriteString(strings.ReplaceAll(tok, ".", "{,}"))
		}
	}
	return "$" + strings.TrimSpace(b.String()) + "$"
}

// ToMathML converts a normalized expression string to presentation MathML: a
// flat <mrow> with one <mn> or <mo> per token. A number containing a decimal
// point is emitted as integer part, a literal <mo>.</mo>, and fractional
// part, not as a single numeral.
func ToMathML(expr string) string {
	var b strings.Builder
	b.WriteString("<math><mrow>")
	for _, tok := range renderTokens(expr) {
		switch tok {
		case "+", "-", "(", ")":
			b.WriteString("<mo>" + tok + "</mo>")
		case "*":
			b.WriteString("<mo>×</mo>")
		case "/":
			b.WriteString("<mo>÷</mo>")
		default:
			if i := strings.IndexByte(tok, '.'); i >= 0 {
				b.WriteString("<mn>" + tok[:i] + "</mn><mo>.</mo><mn>" + tok[i+1:] + "</mn>")
			} else {
				b.WriteString("<mn>" + tok + "</mn>")
			}
		}
	}
	b.WriteString("</mrow></math>")
	return b.String()
}

var displayOps = strings.NewReplacer("*", "×", "/", "÷")

// FormatStep replaces ASCII operator symbols in a step line with display
// glyphs. It is cosmetic only; the result is no longer parseable.
func FormatStep(step string) string {
	return displayOps.Replace(step)
}
