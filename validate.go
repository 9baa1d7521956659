package stepcalc

// Validate reports whether a token sequence passes the adjacency grammar
// check. It looks only at token kinds, never values, and must be consulted
// before parsing: the parser assumes its input validated.
func Validate(tokens []Token) bool {
	return checkGrammar(tokens) == nil
}

// checkGrammar runs the adjacency check and returns the first violation, or
// nil if the sequence is well formed. The rules, over adjacent token kinds:
//
//   - the sequence may not be empty
//   - parentheses balance and never close below depth zero
//   - an operator may not follow an operator
//   - a closing parenthesis may not follow an operator
//   - a number may not follow a number
//   - an opening parenthesis may only follow an operator, another opening
//     parenthesis, or start the sequence
//   - the final token may not be an operator
func checkGrammar(tokens []Token) *GrammarError {
	if len(tokens) == 0 {
		return &GrammarError{Reason: "empty expression"}
	}
	depth := 0
	for i, tok := range tokens {
		switch tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
			if depth < 0 {
				return &GrammarError{Col: tok.Pos, Reason: "unbalanced parentheses"}
			}
		}
		if i == 0 {
			continue
		}
		prev := tokens[i-1]
		switch {
		case prev.Kind.operator() && tok.Kind.operator():
			return &GrammarError{Col: tok.Pos, Reason: "operator " + tok.Text + " may not follow operator " + prev.Text}
		case prev.Kind.operator() && tok.Kind == TokenRParen:
			return &GrammarError{Col: tok.Pos, Reason: "operator " + prev.Text + " before closing parenthesis"}
		case prev.Kind == TokenNumber && tok.Kind == TokenNumber:
			return &GrammarError{Col: tok.Pos, Reason: "number " + tok.Text + " may not follow number " + prev.Text}
		case tok.Kind == TokenLParen && !prev.Kind.operator() && prev.Kind != TokenLParen:
			return &GrammarError{Col: tok.Pos, Reason: "opening parenthesis may not follow " + prev.Text}
		}
	}
	last := tokens[len(tokens)-1]
	if depth != 0 {
		return &GrammarError{Col: last.Pos, Reason: "unbalanced parentheses"}
	}
	if last.Kind.operator() {
		return &GrammarError{Col: last.Pos, Reason: "expression ends with operator " + last.Text}
	}
	return nil
}

// GrammarError indicates a token sequence that fails the adjacency grammar
// check. It implements InputError.
type GrammarError struct {
	// Col is the byte offset of the offending token, or zero for an empty
	// sequence.
	Col int
	// Reason describes the violated rule.
	Reason string
}

func (err *GrammarError) Error() string {
	return errpos(err.Col, err.Reason)
}

func (err *GrammarError) Pos() int {
	return err.Col
}
