package timeexpr

import (
	"testing"

	"github.com/yyxxryrx/pickframe/internal/videoinfo"
)

func mustChecked(t *testing.T, src string) *CheckedExpr {
	t.Helper()
	e, err := ParseExpr(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	Optimize(e)
	checked, verr := Check(e)
	if verr != nil {
		t.Fatalf("check %q: %v", src, verr)
	}
	return checked
}

func testInfo() videoinfo.Info {
	return videoinfo.Info{
		FPS:         25,
		TimeBaseNum: 1,
		TimeBaseDen: 1000,
		StartTime:   videoinfo.Unspecified,
		Duration:    10000,
	}
}

func TestEvalKeywordEnd(t *testing.T) {
	t.Parallel()
	info := testInfo()
	expr := mustChecked(t, "end - 1s")
	got, err := Eval(expr, ToBound, info, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 9000 {
		t.Errorf("got %d, want 9000", got)
	}
}

func TestEvalFrameIndex(t *testing.T) {
	t.Parallel()
	info := testInfo()
	expr := mustChecked(t, "100f")
	got, err := Eval(expr, FromBound, info, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4000 {
		t.Errorf("got %d, want 4000", got)
	}
}

func TestEvalPeerReference(t *testing.T) {
	t.Parallel()
	info := testInfo()
	from := mustChecked(t, "1s")
	to := mustChecked(t, "from + 2s")

	got, err := Eval(to, ToBound, info, from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3000 {
		t.Errorf("got %d, want 3000 (1s from-bound + 2s)", got)
	}
}

func TestEvalSelfReferenceIsError(t *testing.T) {
	t.Parallel()
	info := testInfo()
	expr := mustChecked(t, "from + 1s")
	_, err := Eval(expr, FromBound, info, nil)
	if err != ErrSelfReference {
		t.Fatalf("got %v, want ErrSelfReference", err)
	}
}

func TestEvalStartOffsetApplied(t *testing.T) {
	t.Parallel()
	info := testInfo()
	info.StartTime = 500
	expr := mustChecked(t, "0f")
	got, err := Eval(expr, FromBound, info, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 500 {
		t.Errorf("got %d, want 500 (start offset applied)", got)
	}
}
