package diag

import (
	"fmt"

	"github.com/yyxxryrx/pickframe/internal/orchestrator"
	"github.com/yyxxryrx/pickframe/internal/timeexpr"
)

// FromBoundError translates a failure from orchestrator.Build into a
// renderable Diagnostic, picking the right source string for the side
// that actually failed.
func FromBoundError(be *orchestrator.BoundError, fromSrc, toSrc string) Diagnostic {
	src := fromSrc
	if be.Side == orchestrator.SideTo {
		src = toSrc
	}

	var pe *timeexpr.ParseError
	var ve *timeexpr.ValidationError
	switch {
	case asParseError(be.Err, &pe):
		return fromParseError(be.Side, src, pe)
	case asValidationError(be.Err, &ve):
		return fromValidationError(be.Side, src, ve.Error())
	default:
		// V4 cross-reference failure: no single offset, underline the
		// whole expression.
		return fromValidationError(be.Side, src, be.Err.Error())
	}
}

func asParseError(err error, out **timeexpr.ParseError) bool {
	pe, ok := err.(*timeexpr.ParseError)
	if ok {
		*out = pe
	}
	return ok
}

func asValidationError(err error, out **timeexpr.ValidationError) bool {
	ve, ok := err.(*timeexpr.ValidationError)
	if ok {
		*out = ve
	}
	return ok
}

func location(side orchestrator.Side, offset int) string {
	return fmt.Sprintf("%s:1:%d", side, offset+1)
}

func fromValidationError(side orchestrator.Side, src, message string) Diagnostic {
	return Diagnostic{
		Message:     message,
		Location:    location(side, 0),
		SourceLine:  src,
		CaretOffset: 0,
		CaretLength: max(len(src), 1),
	}
}

func fromParseError(side orchestrator.Side, src string, pe *timeexpr.ParseError) Diagnostic {
	switch pe.Kind {
	case timeexpr.ErrCount:
		return Diagnostic{
			Message:     "too many args, the time num must lower than 3",
			Location:    location(side, pe.Offset),
			SourceLine:  src,
			CaretOffset: pe.Offset,
			CaretLength: max(pe.Length, 1),
			Tip:         "too many args",
		}
	case timeexpr.ErrOp:
		return Diagnostic{
			Message:     "missing operation, expected `+` or `-`",
			Location:    location(side, pe.Offset),
			SourceLine:  src,
			CaretOffset: pe.Offset,
			CaretLength: 1,
			Tip:         "here",
		}
	case timeexpr.ErrEscaped:
		ch := byte(0)
		if pe.Offset < len(src) {
			ch = src[pe.Offset]
		}
		return Diagnostic{
			Message:     fmt.Sprintf("escaped operation: `%c`", ch),
			Location:    location(side, pe.Offset),
			SourceLine:  src,
			CaretOffset: pe.Offset,
			CaretLength: max(pe.Length, 1),
			Tip:         "escaped operation",
		}
	case timeexpr.ErrKeywords:
		word := sliceOrEmpty(src, pe.Offset, pe.Length)
		help := suggestKeyword(word)
		d := Diagnostic{
			Message:     fmt.Sprintf("unknown keyword: `%s`", word),
			Location:    location(side, pe.Offset),
			SourceLine:  src,
			CaretOffset: pe.Offset,
			CaretLength: max(pe.Length, 1),
			Tip:         "invalid token",
		}
		if help != "" {
			d.Help = fmt.Sprintf("did you mean '%s'?", help)
		}
		return d
	default: // ErrNom
		word := sliceOrEmpty(src, pe.Offset, pe.Length)
		message := "invalid token"
		if word != "" {
			message = fmt.Sprintf("invalid token: `%s`", word)
		}
		return Diagnostic{
			Message:     message,
			Location:    location(side, pe.Offset),
			SourceLine:  src,
			CaretOffset: pe.Offset,
			CaretLength: max(pe.Length, 1),
			Tip:         "invalid token",
		}
	}
}

func sliceOrEmpty(s string, offset, length int) string {
	if offset < 0 || offset+length > len(s) || length <= 0 {
		return ""
	}
	return s[offset : offset+length]
}
