package patch

import "github.com/sergi/go-diff/diffmatchpatch"

// Diff returns a terminal-friendly rendering of the change, with inserted
// text in green and deleted text in red. Returns an empty string when the
// result carries no change.
func (r *Result) Diff() string {
	if !r.Changed {
		return ""
	}

	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(r.Original, r.Patched, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.DiffPrettyText(diffs)
}
