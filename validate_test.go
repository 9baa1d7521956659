package stepcalc

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		valid bool
	}{
		{"number", "1", true},
		{"simple", "1+2", true},
		{"scenario", "12+(5*4)-1", true},
		{"leading minus", "-1+2", true},
		{"unary in parens", "(-1)*2", true},
		{"nested parens", "((1+2))*3", true},
		{"decimal", "3.14*2+7/2", true},
		{"unclosed paren", "(1+2", false},
		{"unopened paren", "1+2)", false},
		{"close before open", ")1+2(", false},
		{"adjacent plus", "1++2", false},
		{"adjacent star", "1**2", false},
		{"mixed adjacent ops", "1*/2", false},
		{"trailing plus", "1+", false},
		{"trailing star", "2*3*", false},
		{"operator before close", "(1+)", false},
		{"number before paren", "2(3)", false},
		{"close before open paren", "(1)(2)", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: %v", c.src, err)
			}
			if got := Validate(toks); got != c.valid {
				t.Errorf("validating %q: want %t, got %t", c.src, c.valid, got)
			}
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	if Validate(nil) {
		t.Error("empty sequence validated")
	}
	err := checkGrammar(nil)
	if err == nil {
		t.Fatal("no grammar error for empty sequence")
	}
	if err.Reason != "empty expression" {
		t.Errorf("wrong reason: %q", err.Reason)
	}
}

// Adjacent numbers cannot come out of Tokenize, which merges digit runs after
// stripping whitespace, but the check still guards token sequences built by
// other producers.
func TestValidateAdjacentNumbers(t *testing.T) {
	toks := []Token{
		{Text: "1", Kind: TokenNumber, Pos: 0},
		{Text: "2", Kind: TokenNumber, Pos: 1},
	}
	if Validate(toks) {
		t.Error("adjacent numbers validated")
	}
}

func TestCheckGrammarPositions(t *testing.T) {
	cases := []struct {
		src string
		col int
	}{
		{"1++2", 2},
		{"1+2)", 3},
		{"(1+2", 3},
		{"1+", 1},
		{"(1+)", 3},
		{"2(3)", 1},
	}

	for _, c := range cases {
		toks, err := Tokenize(c.src)
		if err != nil {
			t.Fatalf("tokenizing %q: %v", c.src, err)
		}
		gerr := checkGrammar(toks)
		if gerr == nil {
			t.Errorf("checking %q: no error", c.src)
			continue
		}
		if gerr.Pos() != c.col {
			t.Errorf("checking %q: want error at %d, got %v", c.src, c.col, gerr)
		}
	}
}
