package stepcalc

import "strconv"

// Evaluate computes the value of an expression tree with post-order
// recursion. Group nodes evaluate their inner expression transparently, and
// the tree is never mutated, so the same tree can be evaluated any number of
// times.
//
// Division whose right operand evaluates to exactly zero returns a
// *DivisionByZeroError. All other arithmetic is ordinary float64 arithmetic.
func Evaluate(n Node) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return n.Value, nil
	case *Group:
		return Evaluate(n.Inner)
	case *Unary:
		v, err := Evaluate(n.Operand)
		if err != nil {
			return 0, err
		}
		if n.Op == OpNeg {
			return -v, nil
		}
		return v, nil
	case *Binary:
		l, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return n.Op.apply(l, r)
	}
	panic("stepcalc: unknown node type")
}

// apply computes l op r. Division by exactly zero is the only operand pair
// that fails.
func (op BinaryOp) apply(l, r float64) (float64, error) {
	switch op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		if r == 0 {
			return 0, &DivisionByZeroError{Dividend: l}
		}
		return l / r, nil
	}
	return 0, &UnknownOperatorError{Op: op.String()}
}

// DivisionByZeroError indicates a division whose right operand evaluated to
// exactly zero.
type DivisionByZeroError struct {
	// Dividend is the value that was to be divided.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division of " + formatNumber(err.Dividend) + " by zero"
}

// UnknownOperatorError indicates an operator value outside the defined enum.
// It cannot arise from a parsed tree; it exists for trees built by hand with
// an invalid BinaryOp.
type UnknownOperatorError struct {
	Op string
}

func (err *UnknownOperatorError) Error() string {
	return "unknown operator " + strconv.Quote(err.Op)
}
