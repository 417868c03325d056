package timeexpr

import (
	"testing"
	"time"
)

func TestParseColonTimestamp(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"0:1", 1 * time.Second},
		{"1:2", 62 * time.Second},
		{"1:2:3", 3723 * time.Second},
		{"1:2:3.4", 3723*time.Second + 400*time.Millisecond},
		{"1.4", 1*time.Second + 400*time.Millisecond},
		{"4:5", 245 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			atom, n, ok, err := parseItem(tc.in, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ok {
				t.Fatalf("expected a match")
			}
			if n != len(tc.in) {
				t.Errorf("consumed %d, want %d", n, len(tc.in))
			}
			if atom.Atom.Kind != AtomTimestamp {
				t.Fatalf("got kind %v, want Timestamp", atom.Atom.Kind)
			}
			if atom.Atom.Dur != tc.want {
				t.Errorf("got %v, want %v", atom.Atom.Dur, tc.want)
			}
		})
	}
}

func TestParseColonTimestampTooManyFields(t *testing.T) {
	t.Parallel()
	_, _, _, err := parseItem("1:2:3:4", 0)
	if err == nil || err.Kind != ErrCount {
		t.Fatalf("got %v, want ErrCount", err)
	}
}

func TestParseColonTimestampTooManyFractionalDigits(t *testing.T) {
	t.Parallel()
	_, _, _, err := parseItem("1.2345", 0)
	if err == nil || err.Kind != ErrCount {
		t.Fatalf("got %v, want ErrCount", err)
	}
}

func TestParseBareIntegerHasNoSuffixIsError(t *testing.T) {
	t.Parallel()
	// A bare integer matches no atom form: it needs a colon/fractional
	// part (timestamp), or an "f"/"s"/"ms" suffix.
	_, _, ok, err := parseItem("100", 0)
	if ok || err == nil || err.Kind != ErrNom {
		t.Fatalf("got ok=%v err=%v, want ErrNom", ok, err)
	}
}

func TestParseFrameIndex(t *testing.T) {
	t.Parallel()
	atom, n, ok, err := parseItem("100f", 0)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if n != 4 || atom.Atom.Frame != 100 {
		t.Fatalf("got %+v consumed %d", atom, n)
	}
}

func TestParseSecondTimestamp(t *testing.T) {
	t.Parallel()
	atom, n, ok, err := parseItem("114.15s", 0)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if n != len("114.15s") {
		t.Fatalf("consumed %d", n)
	}
	want := time.Duration(114.15 * float64(time.Second))
	if atom.Atom.Dur.Round(time.Millisecond) != want.Round(time.Millisecond) {
		t.Errorf("got %v want %v", atom.Atom.Dur, want)
	}
}

func TestParseMillisTimestamp(t *testing.T) {
	t.Parallel()
	atom, n, ok, err := parseItem("3ms", 0)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if n != 3 || atom.Atom.Dur != 3*time.Millisecond {
		t.Fatalf("got %+v consumed %d", atom, n)
	}
}

func TestParseKeywords(t *testing.T) {
	t.Parallel()
	for word, kw := range map[string]Keyword{"end": KeywordEnd, "from": KeywordFrom, "to": KeywordTo} {
		atom, n, ok, err := parseItem(word, 0)
		if err != nil || !ok {
			t.Fatalf("%s: ok=%v err=%v", word, ok, err)
		}
		if n != len(word) || atom.Atom.Kind != AtomKeyword || atom.Atom.Word != kw {
			t.Fatalf("%s: got %+v", word, atom)
		}
	}
}

func TestParseUnknownKeyword(t *testing.T) {
	t.Parallel()
	_, _, _, err := parseItem("ent", 0)
	if err == nil || err.Kind != ErrKeywords {
		t.Fatalf("got %v, want ErrKeywords", err)
	}
}

func TestParseItemEmptyInput(t *testing.T) {
	t.Parallel()
	_, _, ok, err := parseItem("   ", 0)
	if err != nil || ok {
		t.Fatalf("expected no atom, no error; got ok=%v err=%v", ok, err)
	}
}

func TestParseItemSkipsLeadingSpaces(t *testing.T) {
	t.Parallel()
	atom, n, ok, err := parseItem("   5f", 0)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if atom.Span.Offset != 3 || atom.Span.Length != 2 || n != 5 {
		t.Fatalf("got span %+v consumed %d", atom.Span, n)
	}
}
