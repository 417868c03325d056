// Package orchestrator ties the time-expression front end together: parse
// each bound source, optimize and validate it, enforce the cross-reference
// guard across the pair, and evaluate a validated pair against a video
// description (spec §4.6).
package orchestrator

import (
	"golang.org/x/sync/errgroup"

	"github.com/yyxxryrx/pickframe/internal/timeexpr"
	"github.com/yyxxryrx/pickframe/internal/videoinfo"
)

// BoundPair holds the two validated, spanless expressions that make up a
// from/to range, plus the original source text (kept for diagnostics
// rendered later against cached sources, not for re-parsing).
type BoundPair struct {
	FromSrc string
	ToSrc   string
	From    *timeexpr.CheckedExpr
	To      *timeexpr.CheckedExpr
}

// boundResult carries one side's parse outcome (the optimized Expr and its
// CheckedExpr) back across the errgroup boundary.
type boundResult struct {
	checked *timeexpr.CheckedExpr
	expr    *timeexpr.Expr
}

// Build parses, optimizes, and validates fromSrc and toSrc independently
// (concurrently — both are pure functions of their input, the same
// "errgroup coordinates independent producers" shape the teacher uses to
// stand up its ingest/distribution/SRT trio), then applies the V4
// cross-reference guard. On any failure it returns a *BoundError naming the
// side that failed and wrapping the underlying error (a *timeexpr.ParseError
// carries the offset); the caller (the CLI, or a library consumer) decides
// how to report it.
func Build(fromSrc, toSrc string) (*BoundPair, error) {
	var fromRes, toRes boundResult
	var fromErr, toErr error

	var g errgroup.Group
	g.Go(func() error {
		fromRes.expr, fromRes.checked, fromErr = parseSide(fromSrc)
		return nil
	})
	g.Go(func() error {
		toRes.expr, toRes.checked, toErr = parseSide(toSrc)
		return nil
	})
	_ = g.Wait() // the goroutines above never return a non-nil error themselves

	if fromErr != nil {
		return nil, &BoundError{Side: SideFrom, Err: fromErr}
	}
	if toErr != nil {
		return nil, &BoundError{Side: SideTo, Err: toErr}
	}

	if referencesKeyword(fromRes.checked, timeexpr.KeywordTo) && referencesKeyword(toRes.checked, timeexpr.KeywordFrom) {
		return nil, &BoundError{Side: SideFrom, Err: errCircularPair}
	}

	return &BoundPair{
		FromSrc: fromSrc,
		ToSrc:   toSrc,
		From:    fromRes.checked,
		To:      toRes.checked,
	}, nil
}

func parseSide(src string) (*timeexpr.Expr, *timeexpr.CheckedExpr, error) {
	expr, perr := timeexpr.ParseExpr(src)
	if perr != nil {
		return nil, nil, perr
	}
	timeexpr.Optimize(expr)
	checked, verr := timeexpr.Check(expr)
	if verr != nil {
		return expr, nil, verr
	}
	return expr, checked, nil
}

func referencesKeyword(e *timeexpr.CheckedExpr, k timeexpr.Keyword) bool {
	for _, atom := range e.Items {
		if atom.Kind == timeexpr.AtomKeyword && atom.Word == k {
			return true
		}
	}
	return false
}

// Which selects which bound Resolve should produce a timestamp for.
type Which int

const (
	WhichFrom Which = iota
	WhichTo
)

// Resolve is a pure function of pair and info: it evaluates the selected
// bound, using the other bound as the peer for cross-references.
func Resolve(pair *BoundPair, info videoinfo.Info, which Which) (int64, error) {
	if which == WhichFrom {
		return timeexpr.Eval(pair.From, timeexpr.FromBound, info, pair.To)
	}
	return timeexpr.Eval(pair.To, timeexpr.ToBound, info, pair.From)
}
