package stepcalc

import (
	"regexp"
	"strings"
)

// ocrSubs maps characters commonly misread from handwriting to the symbols
// they stand for.
var ocrSubs = strings.NewReplacer(
	"x", "*",
	"X", "*",
	"l", "1",
	"I", "1",
	"O", "0",
	"S", "5",
	",", ".",
	"q", "9",
	"b", "6",
	"z", "2",
	"B", "8",
)

var (
	strayParenRun = regexp.MustCompile(`\(\(\)(\d)`)
	implicitLeft  = regexp.MustCompile(`(\d)(\()`)
	implicitRight = regexp.MustCompile(`(\))(\d)`)
	opBeforeClose = regexp.MustCompile(`([+\-*/])(\))`)
)

// Correct applies the fixed recovery rules for raw expressions coming out of
// OCR: whitespace removal, substitutions for commonly confused characters,
// explicit operators for implicit multiplication, operator-pair collapsing,
// and parenthesis repair. The rules are narrow on purpose; anything they do
// not cover is left for Validate to reject.
//
// The core pipeline never calls Correct. It belongs upstream, between text
// extraction and Solve.
func Correct(raw string) string {
	text := stripSpace(raw)
	text = ocrSubs.Replace(text)
	text = fixSyntax(text)
	return balanceParens(text)
}

func fixSyntax(text string) string {
	text = strayParenRun.ReplaceAllString(text, "(*$1")
	text = implicitLeft.ReplaceAllString(text, "$1*$2")
	text = implicitRight.ReplaceAllString(text, "$1*$2")
	// Collapse doubled signs in this order: -- and ++ first, then the mixed
	// pairs they may have produced.
	text = strings.ReplaceAll(text, "--", "+")
	text = strings.ReplaceAll(text, "++", "+")
	text = strings.ReplaceAll(text, "-+", "-")
	text = strings.ReplaceAll(text, "+-", "-")
	text = opBeforeClose.ReplaceAllString(text, "$2")
	text = strings.ReplaceAll(text, "()", "")
	return text
}

// balanceParens drops closing parentheses with no matching opener and appends
// closers for any openers left unmatched at the end.
func balanceParens(text string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
		}
		b.WriteByte(text[i])
	}
	for ; depth > 0; depth-- {
		b.WriteByte(')')
	}
	return b.String()
}
