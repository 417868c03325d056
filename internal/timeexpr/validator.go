package timeexpr

// Check validates a canonicalized Expr against V1-V3 and, on success,
// strips spans to produce an immutable CheckedExpr (spec §4.4). If e has
// not yet been run through Optimize's sign-canonicalization step, Check
// performs that shift itself (spec §9: "Validators must either run after
// optimize, or perform the shift themselves").
func Check(e *Expr) (*CheckedExpr, *ValidationError) {
	ops := e.Ops
	if len(e.Items) > 0 && len(ops) != len(e.Items) {
		synthetic := TaggedOperator{Op: OpAdd, Span: Span{Offset: 0, Length: 0}}
		ops = append([]TaggedOperator{synthetic}, ops...)
	}

	hasAdd := false
	var fromSeen, toSeen bool
	signed := map[Keyword]int{}

	for i, item := range e.Items {
		op := ops[i]
		if op.Op == OpAdd {
			hasAdd = true
		}
		if item.Atom.Kind != AtomKeyword {
			continue
		}
		k := item.Atom.Word
		if op.Op == OpAdd {
			signed[k]++
		} else {
			signed[k]--
		}
		switch k {
		case KeywordFrom:
			fromSeen = true
		case KeywordTo:
			toSeen = true
		}
	}

	if !hasAdd {
		return nil, errOverflow
	}
	for _, count := range signed {
		if count > 1 || count < -1 {
			return nil, errTooManyKeywords
		}
	}
	if fromSeen && toSeen {
		return nil, errCircular
	}

	checked := &CheckedExpr{
		Items: make([]Atom, len(e.Items)),
		Ops:   make([]Operator, len(ops)),
	}
	for i, item := range e.Items {
		checked.Items[i] = item.Atom
	}
	for i, op := range ops {
		checked.Ops[i] = op.Op
	}
	return checked, nil
}
