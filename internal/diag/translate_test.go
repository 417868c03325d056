package diag

import (
	"strings"
	"testing"

	"github.com/yyxxryrx/pickframe/internal/orchestrator"
)

func TestFromBoundErrorParseFailureSide(t *testing.T) {
	t.Parallel()
	_, err := orchestrator.Build("1:2:3:4", "end")
	be := err.(*orchestrator.BoundError)

	d := FromBoundError(be, "1:2:3:4", "end")
	if d.SourceLine != "1:2:3:4" {
		t.Errorf("got source %q, want the from side", d.SourceLine)
	}
	if !strings.Contains(d.Message, "too many args") {
		t.Errorf("got message %q", d.Message)
	}
	if d.Location != "from:1:1" {
		t.Errorf("got location %q", d.Location)
	}
}

func TestFromBoundErrorValidationFailureSide(t *testing.T) {
	t.Parallel()
	_, err := orchestrator.Build("0f", "1s - 2s")
	be := err.(*orchestrator.BoundError)

	d := FromBoundError(be, "0f", "1s - 2s")
	if d.SourceLine != "1s - 2s" {
		t.Errorf("got source %q, want the to side", d.SourceLine)
	}
	if d.Location != "to:1:1" {
		t.Errorf("got location %q", d.Location)
	}
}

func TestFromBoundErrorUnknownKeywordSuggestsFix(t *testing.T) {
	t.Parallel()
	_, err := orchestrator.Build("ent", "end")
	be := err.(*orchestrator.BoundError)

	d := FromBoundError(be, "ent", "end")
	if !strings.Contains(d.Help, "end") {
		t.Errorf("got help %q, want a suggestion mentioning 'end'", d.Help)
	}
}

func TestFromBoundErrorMutualReference(t *testing.T) {
	t.Parallel()
	_, err := orchestrator.Build("to + 1s", "from + 1s")
	be := err.(*orchestrator.BoundError)

	d := FromBoundError(be, "to + 1s", "from + 1s")
	if d.SourceLine != "to + 1s" {
		t.Errorf("got source %q, want the from side", d.SourceLine)
	}
	if !strings.Contains(d.Message, "circular") {
		t.Errorf("got message %q", d.Message)
	}
}
