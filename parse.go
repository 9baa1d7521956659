package stepcalc

import (
	"errors"
	"strconv"
)

// expression := term (('+'|'-') term)*
// term       := factor (('*'|'/') factor)*
// factor     := NUMBER
//             | '(' expression ')'
//             | ('+'|'-') factor

// Parser is a single-use recursive descent parser over a token sequence. It
// carries its cursor as mutable state: construct one per input with NewParser
// and never share it between goroutines or reuse it for another input.
type Parser struct {
	toks []Token
	i    int
}

// NewParser creates a parser for a token sequence. The parser takes exclusive
// ownership of the slice.
func NewParser(tokens []Token) *Parser {
	return &Parser{toks: tokens}
}

// Parse builds the AST for the token sequence. On failure no partial tree is
// returned, and the error describes the first point at which the grammar
// could not continue.
func (p *Parser) Parse() (Node, error) {
	p.i = 0
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok}
	}
	return n, nil
}

// peek returns the current token without consuming it.
func (p *Parser) peek() (Token, bool) {
	if p.i < len(p.toks) {
		return p.toks[p.i], true
	}
	return Token{}, false
}

// expect consumes the current token, which must be of kind want.
func (p *Parser) expect(want TokenKind) (Token, error) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, &EndOfInputError{Col: p.endPos()}
	}
	if tok.Kind != want {
		return Token{}, &WrongTokenError{Col: tok.Pos, Want: want, Got: tok}
	}
	p.i++
	return tok, nil
}

// endPos is the position just past the last token, used for end-of-input
// errors.
func (p *Parser) endPos() int {
	if len(p.toks) == 0 {
		return 0
	}
	last := p.toks[len(p.toks)-1]
	return last.Pos + len(last.Text)
}

func (p *Parser) expression() (Node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != TokenPlus && tok.Kind != TokenMinus) {
			return n, nil
		}
		p.i++
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		op := OpAdd
		if tok.Kind == TokenMinus {
			op = OpSub
		}
		n = &Binary{Op: op, Left: n, Right: rhs}
	}
}

func (p *Parser) term() (Node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != TokenMul && tok.Kind != TokenDiv) {
			return n, nil
		}
		p.i++
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		op := OpMul
		if tok.Kind == TokenDiv {
			op = OpDiv
		}
		n = &Binary{Op: op, Left: n, Right: rhs}
	}
}

func (p *Parser) factor() (Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &EndOfInputError{Col: p.endPos()}
	}
	switch tok.Kind {
	case TokenNumber:
		p.i++
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// The lexer only emits digit runs, so this does not happen for
			// its tokens.
			return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok}
		}
		return &Number{Value: v}, nil
	case TokenLParen:
		p.i++
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return &Group{Inner: inner}, nil
	case TokenPlus, TokenMinus:
		p.i++
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		op := OpPos
		if tok.Kind == TokenMinus {
			op = OpNeg
		}
		return &Unary{Op: op, Operand: operand}, nil
	default:
		return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok}
	}
}
