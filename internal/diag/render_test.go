package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// These two tests mutate the package-level color.NoColor switch, so they
// run sequentially rather than with t.Parallel().

func TestRenderProducesFourLinesPlusBlank(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	d := Diagnostic{
		Message:     "unknown keyword: `ent`",
		Location:    "from:1:1",
		SourceLine:  "ent",
		CaretOffset: 0,
		CaretLength: 3,
		Tip:         "invalid token",
		Help:        "did you mean 'end'?",
	}
	var buf bytes.Buffer
	d.Render(&buf)

	out := buf.String()
	if !strings.Contains(out, "ent") {
		t.Errorf("output missing source line: %q", out)
	}
	if !strings.Contains(out, "^^^") {
		t.Errorf("output missing caret underline: %q", out)
	}
	if !strings.Contains(out, "did you mean 'end'?") {
		t.Errorf("output missing help line: %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 5 {
		t.Errorf("got %d lines, want at least 5 (header, arrow, source, caret, help): %q", len(lines), out)
	}
}

func TestRenderOmitsHelpLineWhenEmpty(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	d := Diagnostic{
		Message:     "missing operation, expected `+` or `-`",
		Location:    "from:1:3",
		SourceLine:  "1f 2s",
		CaretOffset: 3,
		CaretLength: 1,
		Tip:         "here",
	}
	var buf bytes.Buffer
	d.Render(&buf)
	if strings.Contains(buf.String(), "help:") {
		t.Errorf("did not expect a help line: %q", buf.String())
	}
}
