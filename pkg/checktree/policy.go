// ABOUTME: Toggle policy: maps the current TriState and the optimistic flag to the next check intent
// ABOUTME: Partial clicks defer to the caller's policy flag instead of computing an aggregate

package checktree

// NextChecked returns the value a checkbox click asks the host to apply.
//
// Unchecked always turns on. Checked yields the native input's next state,
// which is off because the input is rendered checked only for Checked.
// Partial is ambiguous, so the host's optimistic flag decides: true checks
// every descendant, false clears them.
func NextChecked(state TriState, optimistic bool) bool {
	switch state {
	case Unchecked:
		return true
	case Checked:
		return nativeNext(state)
	case Partial:
		return optimistic
	}
	return false
}

// nativeNext mirrors what a browser checkbox flips to on click.
func nativeNext(state TriState) bool {
	return state != Checked
}
