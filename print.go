package stepcalc

import (
	"math"
	"strconv"
	"strings"
)

// ExprString prints an expression tree as a minimally parenthesized string.
// Group nodes always keep their parentheses; a binary child is parenthesized
// only when its operator binds strictly less tightly than its parent's. The
// comparison ignores associativity, so a right-nested subtraction such as
// "a - (b - c)" reprints without its parentheses; callers that need the
// source form should keep the Group structure the parser builds for explicit
// parentheses.
func ExprString(n Node) string {
	var b strings.Builder
	writeExpr(&b, n)
	return b.String()
}

func writeExpr(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Number:
		b.WriteString(formatNumber(n.Value))
	case *Group:
		b.WriteByte('(')
		writeExpr(b, n.Inner)
		b.WriteByte(')')
	case *Unary:
		if n.Op == OpNeg {
			b.WriteByte('-')
		}
		writeExpr(b, n.Operand)
	case *Binary:
		writeChild(b, n.Op, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		writeChild(b, n.Op, n.Right)
	default:
		panic("stepcalc: unknown node type")
	}
}

func writeChild(b *strings.Builder, parent BinaryOp, n Node) {
	if c, ok := n.(*Binary); ok && c.Op.Precedence() < parent.Precedence() {
		b.WriteByte('(')
		writeExpr(b, n)
		b.WriteByte(')')
		return
	}
	writeExpr(b, n)
}

// formatNumber renders a value the way expressions print numbers: integral
// values without a fractional part, everything else as a shortest decimal
// rounded to 10 significant digits. The rounding keeps binary floating point
// from leaking spurious trailing digits into the output.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 10, 64)
}
