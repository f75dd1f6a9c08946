package renderer

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	diffFromLabel = "avant"
	diffToLabel   = "apres"
)

// UnifiedDiff renders a line-oriented unified diff between the previous and
// current content of an edited comment. It is computed on read for privileged
// display and never stored. Returns "" when the two texts are identical.
func UnifiedDiff(previous, current string) string {
	if previous == current {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(previous),
		B:        difflib.SplitLines(current),
		FromFile: diffFromLabel,
		ToFile:   diffToLabel,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		// difflib only errors on writer failures; a string writer cannot fail.
		return ""
	}
	return strings.TrimRight(text, "\n")
}
