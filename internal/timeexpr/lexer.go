package timeexpr

import (
	"strconv"
	"time"
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// skipSpaces returns the offset of the first non-space byte at or after
// offset. Only ASCII ' ' is treated as space, matching the grammar's
// "skipspaces" rule.
func skipSpaces(src string, offset int) int {
	for offset < len(src) && src[offset] == ' ' {
		offset++
	}
	return offset
}

// digitRun returns the length of the run of ASCII digits starting at offset.
func digitRun(src string, offset int) int {
	n := 0
	for offset+n < len(src) && isDigit(src[offset+n]) {
		n++
	}
	return n
}

func alphaRun(src string, offset int) int {
	n := 0
	for offset+n < len(src) && isAlpha(src[offset+n]) {
		n++
	}
	return n
}

// parseItem consumes leading spaces then attempts to parse one atom
// starting at offset. ok=false, err=nil means the remainder (after spaces)
// is empty: no atom, not an error. ok=false, err!=nil is a hard failure.
func parseItem(src string, offset int) (atom TaggedAtom, next int, ok bool, err *ParseError) {
	start := skipSpaces(src, offset)
	if start >= len(src) {
		return TaggedAtom{}, start, false, nil
	}

	if isDigit(src[start]) {
		if a, n, matched, e := parseColonTimestamp(src, start); e != nil {
			return TaggedAtom{}, 0, false, e
		} else if matched {
			return a, n, true, nil
		}
		if a, n, matched, e := parseFrameIndex(src, start); e != nil {
			return TaggedAtom{}, 0, false, e
		} else if matched {
			return a, n, true, nil
		}
		if a, n, matched, e := parseSecondTimestamp(src, start); e != nil {
			return TaggedAtom{}, 0, false, e
		} else if matched {
			return a, n, true, nil
		}
		if a, n, matched, e := parseMillisTimestamp(src, start); e != nil {
			return TaggedAtom{}, 0, false, e
		} else if matched {
			return a, n, true, nil
		}
		n := digitRun(src, start)
		if n == 0 {
			n = 1
		}
		return TaggedAtom{}, 0, false, &ParseError{Kind: ErrNom, Offset: start, Length: n}
	}

	if isAlpha(src[start]) {
		if a, n, matched := parseKeyword(src, start); matched {
			return a, n, true, nil
		}
		n := alphaRun(src, start)
		return TaggedAtom{}, 0, false, &ParseError{Kind: ErrKeywords, Offset: start, Length: n}
	}

	if src[start] == '+' || src[start] == '-' {
		// A stray '+'/'-' where an atom is expected is a dangling operator,
		// not generic nonsense: surfaced as Escaped (spec §7, §8.4), one of
		// the "intrinsic ... kinds from the lexer layer" per spec §4.2.
		return TaggedAtom{}, 0, false, &ParseError{Kind: ErrEscaped, Offset: start, Length: 1}
	}

	return TaggedAtom{}, 0, false, &ParseError{Kind: ErrNom, Offset: start, Length: 1}
}

// parseColonTimestamp recognizes H:M:S, M:S (with an optional .fff suffix
// on the last form) or a lone N.fff. At least one colon or a fractional
// part must be present; a bare integer is not a colon-timestamp and falls
// through with ok=false, err=nil. More than 3 colon-separated fields is a
// hard ErrCount failure (spec §4.1, §9).
func parseColonTimestamp(src string, start int) (TaggedAtom, int, bool, *ParseError) {
	pos := start
	n := digitRun(src, pos)
	if n == 0 {
		return TaggedAtom{}, 0, false, nil
	}
	first, _ := strconv.ParseUint(src[pos:pos+n], 10, 64)
	fields := []uint64{first}
	pos += n

	var msDigits string
	for {
		if pos < len(src) && src[pos] == ':' {
			dn := digitRun(src, pos+1)
			if dn == 0 {
				// ':' not followed by digits: not a colon-timestamp after all.
				return TaggedAtom{}, 0, false, nil
			}
			v, _ := strconv.ParseUint(src[pos+1:pos+1+dn], 10, 64)
			fields = append(fields, v)
			pos += 1 + dn
			if len(fields) > 3 {
				return TaggedAtom{}, 0, false, &ParseError{Kind: ErrCount, Offset: start, Length: pos - start}
			}
			continue
		}
		if pos < len(src) && src[pos] == '.' {
			dn := digitRun(src, pos+1)
			if dn == 0 {
				return TaggedAtom{}, 0, false, nil
			}
			if len(fields) == 1 && pos+1+dn < len(src) && src[pos+1+dn] == 's' {
				// N.D followed by "s" is a second timestamp, not a colon-timestamp.
				return TaggedAtom{}, 0, false, nil
			}
			if dn > 3 {
				return TaggedAtom{}, 0, false, &ParseError{Kind: ErrCount, Offset: start, Length: pos + 1 + dn - start}
			}
			msDigits = src[pos+1 : pos+1+dn]
			pos += 1 + dn
		}
		break
	}

	if len(fields) < 2 && msDigits == "" {
		// A lone integer is not a colon-timestamp.
		return TaggedAtom{}, 0, false, nil
	}

	var secs uint64
	l := len(fields)
	for i, v := range fields {
		secs += v * pow60(l-i-1)
	}
	dur := time.Duration(secs) * time.Second
	if msDigits != "" {
		ms, _ := strconv.ParseUint(msDigits, 10, 64)
		switch len(msDigits) {
		case 1:
			ms *= 100
		case 2:
			ms *= 10
		}
		dur += time.Duration(ms) * time.Millisecond
	}

	return TaggedAtom{Atom: TimestampAtom(dur), Span: Span{Offset: start, Length: pos - start}}, pos, true, nil
}

func pow60(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= 60
	}
	return v
}

// parseFrameIndex recognizes N "f".
func parseFrameIndex(src string, start int) (TaggedAtom, int, bool, *ParseError) {
	n := digitRun(src, start)
	if n == 0 {
		return TaggedAtom{}, 0, false, nil
	}
	pos := start + n
	if pos >= len(src) || src[pos] != 'f' {
		return TaggedAtom{}, 0, false, nil
	}
	value, _ := strconv.ParseUint(src[start:start+n], 10, 64)
	end := pos + 1
	return TaggedAtom{Atom: FrameIndexAtom(value), Span: Span{Offset: start, Length: end - start}}, end, true, nil
}

// parseSecondTimestamp recognizes N[.D] "s".
func parseSecondTimestamp(src string, start int) (TaggedAtom, int, bool, *ParseError) {
	n := digitRun(src, start)
	if n == 0 {
		return TaggedAtom{}, 0, false, nil
	}
	pos := start + n
	text := src[start:pos]
	if pos < len(src) && src[pos] == '.' {
		dn := digitRun(src, pos+1)
		if dn > 0 {
			text = src[start : pos+1+dn]
			pos += 1 + dn
		}
	}
	if pos >= len(src) || src[pos] != 's' {
		return TaggedAtom{}, 0, false, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return TaggedAtom{}, 0, false, nil
	}
	end := pos + 1
	dur := time.Duration(value * float64(time.Second))
	return TaggedAtom{Atom: TimestampAtom(dur), Span: Span{Offset: start, Length: end - start}}, end, true, nil
}

// parseMillisTimestamp recognizes N "ms".
func parseMillisTimestamp(src string, start int) (TaggedAtom, int, bool, *ParseError) {
	n := digitRun(src, start)
	if n == 0 {
		return TaggedAtom{}, 0, false, nil
	}
	pos := start + n
	if pos+1 >= len(src) || src[pos] != 'm' || src[pos+1] != 's' {
		return TaggedAtom{}, 0, false, nil
	}
	value, _ := strconv.ParseUint(src[start:pos], 10, 64)
	end := pos + 2
	dur := time.Duration(value) * time.Millisecond
	return TaggedAtom{Atom: TimestampAtom(dur), Span: Span{Offset: start, Length: end - start}}, end, true, nil
}

// parseKeyword recognizes "end", "from", or "to".
func parseKeyword(src string, start int) (TaggedAtom, int, bool) {
	n := alphaRun(src, start)
	word := src[start : start+n]
	var kw Keyword
	switch word {
	case "end":
		kw = KeywordEnd
	case "from":
		kw = KeywordFrom
	case "to":
		kw = KeywordTo
	default:
		return TaggedAtom{}, 0, false
	}
	end := start + n
	return TaggedAtom{Atom: KeywordAtom(kw), Span: Span{Offset: start, Length: n}}, end, true
}
