package stepcalc_test

import (
	"testing"

	"github.com/apexpr/stepcalc"
)

func TestToLaTeX(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want string
	}{
		{"number", "42", `$42$`},
		{"add", "1 + 2", `$1 + 2$`},
		{"times", "3 * 4", `$3 \times 4$`},
		{"div", "8 / 2", `$8 \div 2$`},
		{"parens", "(1 + 2) * 3", `$\left(1 + 2\right) \times 3$`},
		{"decimal comma", "3.14 * 2", `$3{,}14 \times 2$`},
		{"scenario", "12 + (5 * 4) - 1", `$12 + \left(5 \times 4\right) - 1$`},
		{"unspaced input", "12+(5*4)-1", `$12 + \left(5 \times 4\right) - 1$`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := stepcalc.ToLaTeX(c.expr); got != c.want {
				t.Errorf("rendering %q: want %q, got %q", c.expr, c.want, got)
			}
		})
	}
}

func TestToMathML(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want string
	}{
		{"number", "42", "<math><mrow><mn>42</mn></mrow></math>"},
		{"add", "1 + 2", "<math><mrow><mn>1</mn><mo>+</mo><mn>2</mn></mrow></math>"},
		{"times", "3 * 4", "<math><mrow><mn>3</mn><mo>×</mo><mn>4</mn></mrow></math>"},
		{"parens", "(1) / 2", "<math><mrow><mo>(</mo><mn>1</mn><mo>)</mo><mo>÷</mo><mn>2</mn></mrow></math>"},
		// A decimal number splits into integer part, dot, and fractional
		// part instead of a single numeral.
		{"decimal", "3.14 + 1", "<math><mrow><mn>3</mn><mo>.</mo><mn>14</mn><mo>+</mo><mn>1</mn></mrow></math>"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := stepcalc.ToMathML(c.expr); got != c.want {
				t.Errorf("rendering %q: want %q, got %q", c.expr, c.want, got)
			}
		})
	}
}

func TestFormatStep(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12 + (5 * 4) - 1", "12 + (5 × 4) - 1"},
		{"8 / 2 = 4", "8 ÷ 2 = 4"},
		{"1 + 2", "1 + 2"},
	}

	for _, c := range cases {
		if got := stepcalc.FormatStep(c.in); got != c.want {
			t.Errorf("formatting %q: want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestRender(t *testing.T) {
	expr := "3 * 4"
	if got := stepcalc.Render(expr, stepcalc.Plain); got != expr {
		t.Errorf("plain render changed the input: %q", got)
	}
	if got, want := stepcalc.Render(expr, stepcalc.LaTeX), stepcalc.ToLaTeX(expr); got != want {
		t.Errorf("latex render: want %q, got %q", want, got)
	}
	if got, want := stepcalc.Render(expr, stepcalc.MathML), stepcalc.ToMathML(expr); got != want {
		t.Errorf("mathml render: want %q, got %q", want, got)
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		name string
		want stepcalc.Format
		ok   bool
	}{
		{"latex", stepcalc.LaTeX, true},
		{"mathml", stepcalc.MathML, true},
		{"plain", stepcalc.Plain, true},
		{"", stepcalc.LaTeX, true},
		{"svg", 0, false},
	}

	for _, c := range cases {
		got, err := stepcalc.ParseFormat(c.name)
		if c.ok != (err == nil) {
			t.Errorf("parsing %q: unexpected error state %v", c.name, err)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("parsing %q: want %v, got %v", c.name, c.want, got)
		}
	}
}
