package timeexpr

// ParseExpr parses a full time expression:
//
//	expr := item (op item)*
//	op   := skipspaces ('+' | '-')
//
// An empty input yields an empty Expr. Every failure is a *ParseError
// anchored at the byte offset where the failing atom or operator attempt
// began (spec §4.2).
//
// The first item may carry an explicit leading sign ("-1s"), the same sign
// Optimize would otherwise synthesize (spec §4.3); when present it is stored
// in Ops[0] directly, so Items and Ops come out already equal in length for
// that one expression, a shape Optimize's canonicalizeSigns already treats
// as a no-op. A leading sign not followed by an atom is the same "operator
// not followed by an atom" failure as any other dangling operator (spec
// §8.4): Escaped, anchored at the sign's own offset.
func ParseExpr(src string) (*Expr, *ParseError) {
	e := &Expr{}

	start := skipSpaces(src, 0)
	itemStart := start
	var leadOp *TaggedOperator
	if start < len(src) && (src[start] == '+' || src[start] == '-') {
		op := OpAdd
		if src[start] == '-' {
			op = OpSub
		}
		leadOp = &TaggedOperator{Op: op, Span: Span{Offset: start, Length: 1}}
		itemStart = start + 1
	}

	item, offset, ok, err := parseItem(src, itemStart)
	if err != nil {
		return nil, err
	}
	if !ok {
		if leadOp != nil {
			return nil, &ParseError{Kind: ErrEscaped, Offset: leadOp.Span.Offset, Length: 1}
		}
		return e, nil
	}
	e.Items = append(e.Items, item)
	if leadOp != nil {
		e.Ops = append(e.Ops, *leadOp)
	}

	for {
		opStart := skipSpaces(src, offset)
		if opStart >= len(src) {
			break
		}
		c := src[opStart]
		if c != '+' && c != '-' {
			return nil, &ParseError{Kind: ErrOp, Offset: opStart, Length: 1}
		}
		operator := OpAdd
		if c == '-' {
			operator = OpSub
		}
		opSpan := Span{Offset: opStart, Length: 1}

		next, nextOffset, nextOk, nextErr := parseItem(src, opStart+1)
		if nextErr != nil {
			return nil, nextErr
		}
		if !nextOk {
			return nil, &ParseError{Kind: ErrEscaped, Offset: opStart, Length: 1}
		}

		e.Ops = append(e.Ops, TaggedOperator{Op: operator, Span: opSpan})
		e.Items = append(e.Items, next)
		offset = nextOffset
	}

	return e, nil
}
