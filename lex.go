package stepcalc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is the smallest lexical unit of an expression. Tokens are immutable
// once produced.
type Token struct {
	// Text is the literal text of the token.
	Text string
	// Kind is the token's kind tag.
	Kind TokenKind
	// Pos is the byte offset of the token in the whitespace-stripped input.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind classifies a token.
type TokenKind int

const (
	// TokenNumber is an integer or decimal literal.
	TokenNumber TokenKind = iota
	// TokenPlus is the + operator.
	TokenPlus
	// TokenMinus is the - operator.
	TokenMinus
	// TokenMul is the * operator.
	TokenMul
	// TokenDiv is the / operator.
	TokenDiv
	// TokenLParen is an opening parenthesis.
	TokenLParen
	// TokenRParen is a closing parenthesis.
	TokenRParen
)

var tokenKindNames = [...]string{
	TokenNumber: "Number",
	TokenPlus:   "Plus",
	TokenMinus:  "Minus",
	TokenMul:    "Mul",
	TokenDiv:    "Div",
	TokenLParen: "LParen",
	TokenRParen: "RParen",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// operator reports whether k is one of the four operator kinds.
func (k TokenKind) operator() bool {
	switch k {
	case TokenPlus, TokenMinus, TokenMul, TokenDiv:
		return true
	}
	return false
}

// stripSpace removes every whitespace codepoint from s. Whitespace carries no
// grammatical meaning in an expression.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Tokenize scans an expression into an ordered token sequence. Whitespace is
// stripped before scanning, so token positions refer to the stripped input.
// Scanning is maximal munch: a number consumes as many digits as possible,
// plus a decimal point and more digits when they follow.
//
// A character that matches no token pattern produces a *LexError.
func Tokenize(input string) ([]Token, error) {
	src := stripSpace(input)
	var toks []Token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case isDigit(c):
			j := i + 1
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			if j+1 < len(src) && src[j] == '.' && isDigit(src[j+1]) {
				j += 2
				for j < len(src) && isDigit(src[j]) {
					j++
				}
			}
			toks = append(toks, Token{Text: src[i:j], Kind: TokenNumber, Pos: i})
			i = j
		case c == '+':
			toks = append(toks, Token{Text: "+", Kind: TokenPlus, Pos: i})
			i++
		case c == '-':
			toks = append(toks, Token{Text: "-", Kind: TokenMinus, Pos: i})
			i++
		case c == '*':
			toks = append(toks, Token{Text: "*", Kind: TokenMul, Pos: i})
			i++
		case c == '/':
			toks = append(toks, Token{Text: "/", Kind: TokenDiv, Pos: i})
			i++
		case c == '(':
			toks = append(toks, Token{Text: "(", Kind: TokenLParen, Pos: i})
			i++
		case c == ')':
			toks = append(toks, Token{Text: ")", Kind: TokenRParen, Pos: i})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(src[i:])
			return nil, &LexError{Char: r, Col: i}
		}
	}
	return toks, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// LexError indicates a character that matches no token pattern. It implements
// InputError.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Col is the byte offset of the character in the whitespace-stripped
	// input.
	Col int
}

func (err *LexError) Error() string {
	return "invalid character " + strconv.QuoteRune(err.Char) + " at position " + strconv.Itoa(err.Col)
}

func (err *LexError) Pos() int {
	return err.Col
}
