package stepcalc

import "strconv"

// Node is a node in the abstract syntax tree of an expression. The four
// implementations are *Number, *Unary, *Binary, and *Group; consumers switch
// over all of them.
//
// A tree is built once per parse and is otherwise immutable. The stepwise
// solver works on a Clone so that the parsed tree stays untouched.
type Node interface {
	astNode()
}

// Number is a numeric leaf.
type Number struct {
	Value float64
}

// Unary applies a sign to its operand. It owns the operand exclusively.
type Unary struct {
	Op      UnaryOp
	Operand Node
}

// Binary combines two operands with an arithmetic operator. It owns both
// children exclusively. The parser folds repetition leftward, so chains of
// same-precedence operators form left-leaning trees matching left-to-right
// evaluation order.
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

// Group marks an explicit parenthesization in the source. It is transparent
// to evaluation but always prints its parentheses.
type Group struct {
	Inner Node
}

func (*Number) astNode() {}
func (*Unary) astNode()  {}
func (*Binary) astNode() {}
func (*Group) astNode()  {}

// BinaryOp is a binary arithmetic operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Precedence returns the operator's binding strength. Higher binds tighter.
// The printer uses this to decide which children need parentheses; the parser
// encodes precedence in its grammar levels instead.
func (op BinaryOp) Precedence() int {
	switch op {
	case OpMul, OpDiv:
		return 2
	default:
		return 1
	}
}

// UnaryOp is a unary sign operator.
type UnaryOp int

const (
	// OpPos is the identity sign.
	OpPos UnaryOp = iota
	// OpNeg negates its operand.
	OpNeg
)

func (op UnaryOp) String() string {
	switch op {
	case OpPos:
		return "+"
	case OpNeg:
		return "-"
	}
	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Clone returns a deep copy of n sharing no nodes with the original.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Number:
		c := *n
		return &c
	case *Unary:
		return &Unary{Op: n.Op, Operand: Clone(n.Operand)}
	case *Binary:
		return &Binary{Op: n.Op, Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Group:
		return &Group{Inner: Clone(n.Inner)}
	}
	panic("stepcalc: unknown node type")
}
