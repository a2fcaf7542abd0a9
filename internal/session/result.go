package session

import (
	"time"

	"github.com/abhisek/mathstar/internal/problemgen"
)

// Result is the summary of a session handed to the progress ledger.
type Result struct {
	SessionID  string
	Mode       Mode
	Correct    int
	Total      int
	Score      int
	Operations []problemgen.Operation // one entry per question, in order
	StartTime  time.Time
	EndTime    time.Time
	Finished   bool
}

// Result summarizes the session. Finished is false until Advance has
// moved past the last question.
func (s Session) Result() Result {
	ops := make([]problemgen.Operation, len(s.Questions))
	for i, q := range s.Questions {
		ops[i] = q.Operation
	}
	r := Result{
		SessionID:  s.ID,
		Mode:       s.Mode,
		Correct:    s.CorrectAnswers,
		Total:      s.TotalQuestions,
		Score:      s.Score,
		Operations: ops,
		StartTime:  s.StartTime,
	}
	if s.EndTime != nil {
		r.EndTime = *s.EndTime
		r.Finished = true
	}
	return r
}

// CountOperation returns how many questions used op.
func (r Result) CountOperation(op problemgen.Operation) int {
	n := 0
	for _, o := range r.Operations {
		if o == op {
			n++
		}
	}
	return n
}

// Percentage returns the share of correct answers, 0-100.
func (r Result) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Duration returns how long the session took.
func (r Result) Duration() time.Duration {
	if !r.Finished {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

// Performance returns the headline message for the results screen.
func (r Result) Performance() string {
	pct := r.Percentage()
	switch {
	case pct >= 90:
		return "Outstanding! You're a math genius!"
	case pct >= 70:
		return "Great job! You're getting really good!"
	case pct >= 50:
		return "Good work! Keep practicing!"
	default:
		return "Nice try! Practice makes perfect!"
	}
}
