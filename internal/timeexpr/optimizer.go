package timeexpr

// Optimize rewrites e in place: it canonicalizes the sign of every atom by
// prepending a synthetic leading Add, then folds same-kind atoms (at most
// one surviving FrameIndex and one surviving Timestamp) while preserving
// semantics (spec §4.3). Optimize is idempotent: calling it again on an
// already-canonical, already-folded Expr is a no-op.
func Optimize(e *Expr) {
	canonicalizeSigns(e)
	foldSameKind(e)
}

func canonicalizeSigns(e *Expr) {
	if len(e.Items) == 0 || len(e.Ops) == len(e.Items) {
		return
	}
	synthetic := TaggedOperator{Op: OpAdd, Span: Span{Offset: 0, Length: 0}}
	ops := make([]TaggedOperator, 0, len(e.Items))
	ops = append(ops, synthetic)
	ops = append(ops, e.Ops...)
	e.Ops = ops
}

// foldSameKind scans left to right, maintaining the first-seen index of a
// FrameIndex and of a Timestamp. A second atom of the same kind is merged
// into the first and removed.
func foldSameKind(e *Expr) {
	firstFrame := -1
	firstTimestamp := -1

	i := 0
	for i < len(e.Items) {
		kind := e.Items[i].Atom.Kind
		switch kind {
		case AtomFrameIndex:
			if firstFrame == -1 {
				firstFrame = i
				i++
				continue
			}
			foldInto(e, firstFrame, i)
		case AtomTimestamp:
			if firstTimestamp == -1 {
				firstTimestamp = i
				i++
				continue
			}
			foldInto(e, firstTimestamp, i)
		default:
			i++
		}
		// Position i was removed; don't advance, re-examine the item now
		// occupying index i (if any).
	}
}

// foldInto merges e.Items[i] into e.Items[first] per the sign-combination
// policy, then removes index i from both parallel arrays.
func foldInto(e *Expr, first, i int) {
	a := e.Items[first].Atom
	b := e.Items[i].Atom
	opA := e.Ops[first].Op
	opB := e.Ops[i].Op

	switch {
	case opA == opB:
		e.Items[first].Atom = add(a, b)
	case greater(a, b):
		e.Items[first].Atom = sub(a, b)
	default:
		e.Ops[first] = TaggedOperator{Op: opA.Invert(), Span: e.Ops[first].Span}
		e.Items[first].Atom = sub(b, a)
	}

	e.Items = append(e.Items[:i], e.Items[i+1:]...)
	e.Ops = append(e.Ops[:i], e.Ops[i+1:]...)
}
