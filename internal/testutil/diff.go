package testutil

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a readable comparison of two statement texts for test
// failures, with an inline character diff. DDL statements get long enough
// that the plain want/got pair is hard to scan.
func Diff(expected string, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	return "expected: " + expected +
		"\nactual:   " + actual +
		"\ndiff:     " + dmp.DiffPrettyText(diffs)
}
