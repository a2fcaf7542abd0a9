package missions

import "github.com/abhisek/mathstar/internal/session"

// Apply adds a finished session's contribution to m.
// Completed missions are returned unchanged. granted is true only on the
// call that moves the mission from incomplete to complete.
func Apply(m Mission, r session.Result) (updated Mission, granted bool) {
	if m.Completed {
		return m, false
	}

	var add int
	if m.Operation != "" {
		add = r.CountOperation(m.Operation)
	} else {
		add = r.Correct
	}

	m.Progress = min(m.Progress+add, m.Target)
	if m.Progress >= m.Target {
		m.Completed = true
		return m, true
	}
	return m, false
}
