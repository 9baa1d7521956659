package stepcalc

import "strconv"

// EndOfInputError indicates that the token sequence ended where the grammar
// required more input. It implements InputError.
type EndOfInputError struct {
	// Col is the position just past the final token.
	Col int
}

func (err *EndOfInputError) Error() string {
	return errpos(err.Col, "unexpected end of expression")
}

func (err *EndOfInputError) Pos() int {
	return err.Col
}

// UnexpectedTokenError indicates a token that cannot begin or continue the
// construct being parsed. It implements InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token that was not understood.
	Token Token
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token.Text))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// WrongTokenError indicates a token of a different kind than the grammar
// demanded. It implements InputError.
type WrongTokenError struct {
	// Col is the position of the token.
	Col int
	// Want is the kind the parser demanded.
	Want TokenKind
	// Got is the token found instead.
	Got Token
}

func (err *WrongTokenError) Error() string {
	return errpos(err.Col, "expected "+err.Want.String()+", got "+strconv.Quote(err.Got.Text))
}

func (err *WrongTokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the whitespace-stripped input of the
	// token or character that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*GrammarError)(nil)
	_ InputError = (*EndOfInputError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*WrongTokenError)(nil)
)
