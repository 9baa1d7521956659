package stepcalc

// SolveSteps returns the expression collapsing toward its final value, one
// reduced subtree at a time. The first element is the printed form of n, each
// following element is the whole expression after one more subtree became a
// number, and the last element is the bare result. Adjacent duplicates are
// suppressed, so a collapse that does not change the printed form (such as a
// unary plus) adds no step.
//
// The reduction runs on a private deep copy; n itself is never mutated.
func SolveSteps(n Node) ([]string, error) {
	root := Clone(n)
	s := stepper{root: &root, steps: []string{ExprString(root)}}
	if err := s.reduce(&root); err != nil {
		return nil, err
	}
	return s.steps, nil
}

// stepper rewrites composite nodes into Number leaves in post-order and
// records a snapshot of the whole expression after each rewrite.
type stepper struct {
	root  *Node
	steps []string
}

func (s *stepper) reduce(slot *Node) error {
	switch n := (*slot).(type) {
	case *Number:
		return nil
	case *Group:
		if err := s.reduce(&n.Inner); err != nil {
			return err
		}
		return s.collapse(slot)
	case *Unary:
		if err := s.reduce(&n.Operand); err != nil {
			return err
		}
		return s.collapse(slot)
	case *Binary:
		if err := s.reduce(&n.Left); err != nil {
			return err
		}
		if err := s.reduce(&n.Right); err != nil {
			return err
		}
		return s.collapse(slot)
	}
	panic("stepcalc: unknown node type")
}

// collapse replaces the subtree at slot with a Number leaf holding its value.
// Children of the subtree are already numbers when collapse runs.
func (s *stepper) collapse(slot *Node) error {
	v, err := Evaluate(*slot)
	if err != nil {
		return err
	}
	*slot = &Number{Value: v}
	if str := ExprString(*s.root); str != s.steps[len(s.steps)-1] {
		s.steps = append(s.steps, str)
	}
	return nil
}

// OpSteps returns operation-level steps in evaluation order, one
// "a op b = c" line per binary reduction and one "-a = b" line per effective
// unary one. It is an alternative trace format to SolveSteps: instead of
// snapshots of the whole expression, each line shows a single operation with
// its operands and result. n is never mutated.
func OpSteps(n Node) ([]string, error) {
	var w opWalker
	if _, err := w.walk(n); err != nil {
		return nil, err
	}
	return w.steps, nil
}

type opWalker struct {
	steps []string
}

func (w *opWalker) walk(n Node) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return n.Value, nil
	case *Group:
		return w.walk(n.Inner)
	case *Unary:
		v, err := w.walk(n.Operand)
		if err != nil {
			return 0, err
		}
		if n.Op != OpNeg {
			return v, nil
		}
		w.steps = append(w.steps, "-"+formatNumber(v)+" = "+formatNumber(-v))
		return -v, nil
	case *Binary:
		l, err := w.walk(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := w.walk(n.Right)
		if err != nil {
			return 0, err
		}
		v, err := n.Op.apply(l, r)
		if err != nil {
			return 0, err
		}
		w.steps = append(w.steps, formatNumber(l)+" "+n.Op.String()+" "+formatNumber(r)+" = "+formatNumber(v))
		return v, nil
	}
	panic("stepcalc: unknown node type")
}
