package timeexpr

import (
	"errors"

	"github.com/yyxxryrx/pickframe/internal/videoinfo"
)

// Role selects which of the two bound expressions is being evaluated,
// which in turn selects which keyword resolves to the peer expression
// (spec §4.5).
type Role int

const (
	FromBound Role = iota
	ToBound
)

func (r Role) other() Role {
	if r == FromBound {
		return ToBound
	}
	return FromBound
}

// peerKeyword is the keyword that, for this role, points at the other
// bound's expression.
func (r Role) peerKeyword() Keyword {
	if r == FromBound {
		return KeywordTo
	}
	return KeywordFrom
}

// ErrSelfReference is returned when an expression's own role keyword
// (e.g. "from" inside the from-bound expression) appears in itself. V3/V4
// only forbid referencing the *other* bound from both sides; a bound
// referencing its own name has no defined resolution, so it is treated as
// an evaluation-time error rather than looped on.
var ErrSelfReference = errors.New("timeexpr: expression references its own bound")

// maxRecursionDepth guards against cycles that should be impossible once
// V4 holds (spec §4.5, §9: "at most one level of recursion occurs").
const maxRecursionDepth = 8

// Eval resolves a validated expression against a video description. peer
// is the other bound's CheckedExpr, consulted only if expr references it.
func Eval(expr *CheckedExpr, role Role, info videoinfo.Info, peer *CheckedExpr) (int64, error) {
	return evalDepth(expr, role, info, peer, 0)
}

func evalDepth(expr *CheckedExpr, role Role, info videoinfo.Info, peer *CheckedExpr, depth int) (int64, error) {
	if depth > maxRecursionDepth {
		return 0, errCircular
	}

	var total int64
	for i, atom := range expr.Items {
		op := expr.Ops[i]
		contribution, err := evalAtom(atom, expr, role, info, peer, depth)
		if err != nil {
			return 0, err
		}
		if op == OpAdd {
			total += contribution
		} else {
			total -= contribution
		}
	}
	return total, nil
}

func evalAtom(atom Atom, self *CheckedExpr, role Role, info videoinfo.Info, peer *CheckedExpr, depth int) (int64, error) {
	switch atom.Kind {
	case AtomFrameIndex:
		return info.FrameToTS(atom.Frame), nil
	case AtomTimestamp:
		return info.MsToTS(atom.Dur.Milliseconds()), nil
	case AtomKeyword:
		return evalKeyword(atom.Word, self, role, info, peer, depth)
	default:
		return 0, nil
	}
}

func evalKeyword(k Keyword, self *CheckedExpr, role Role, info videoinfo.Info, peer *CheckedExpr, depth int) (int64, error) {
	if k == KeywordEnd {
		return info.Duration, nil
	}
	if k == role.peerKeyword() {
		// Recurse into the peer, with this expression now playing the
		// role of *its* peer.
		return evalDepth(peer, role.other(), info, self, depth+1)
	}
	// k names this same bound's own role keyword.
	return 0, ErrSelfReference
}
