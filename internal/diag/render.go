package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorHeader = color.New(color.FgHiRed, color.Bold).SprintFunc()
	whiteText   = color.New(color.FgHiWhite).SprintFunc()
	arrow       = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	caretColor  = color.New(color.FgHiRed).SprintFunc()
	tipColor    = color.New(color.FgHiRed).SprintFunc()
	helpColor   = color.New(color.FgHiCyan, color.Bold).SprintFunc()
)

// Render writes the four-line diagnostic block (plus an optional help
// line) to w.
func (d Diagnostic) Render(w io.Writer) {
	fmt.Fprintf(w, "%s: %s\n", errorHeader("error"), whiteText(d.Message))
	fmt.Fprintf(w, "%s\n", arrow("  --> "+d.Location))
	fmt.Fprintf(w, "   %s\n", arrow("|"))
	fmt.Fprintf(w, " %s %s\n", arrow("1 |"), d.SourceLine)

	underline := strings.Repeat(" ", d.CaretOffset) + caretColor(strings.Repeat("^", max(d.CaretLength, 1)))
	tip := ""
	if d.Tip != "" {
		tip = " " + tipColor(d.Tip)
	}
	fmt.Fprintf(w, "   %s %s%s\n", arrow("|"), underline, tip)

	if d.Help != "" {
		fmt.Fprintf(w, "   %s\n", arrow("|"))
		fmt.Fprintf(w, "   %s\n", helpColor("= help: "+d.Help))
	}
	fmt.Fprintln(w)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
