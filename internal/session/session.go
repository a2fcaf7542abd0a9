package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathstar/internal/problemgen"
	"github.com/google/uuid"
)

var (
	ErrSessionFinished = errors.New("session is finished")
	ErrAlreadyAnswered = errors.New("current question already answered")
	ErrNotAnswered     = errors.New("current question not answered yet")
)

// Phase is the question-level sub-state of a session.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // Question shown, no answer yet
	PhaseShowingResult               // Answer recorded, waiting for Advance
	PhaseFinished                    // All questions done, EndTime set
)

// Session is one play-through of a fixed batch of questions.
// Sessions are values: every transition returns an updated copy and
// leaves the receiver untouched.
type Session struct {
	ID             string
	Questions      []*problemgen.Question
	CurrentIndex   int
	Score          int
	CorrectAnswers int
	TotalQuestions int
	StartTime      time.Time
	EndTime        *time.Time
	Mode           Mode

	// Answered is true while the result for the current question is shown.
	Answered bool

	// Selected is the chosen option for the current question, nil on timeout.
	Selected *int

	// LastCorrect records whether the current question was answered correctly.
	LastCorrect bool

	// TimeLeft is the remaining countdown in seconds (countdown modes only).
	TimeLeft int
}

// New generates the questions for mode and returns a session at index 0.
func New(gen *problemgen.Generator, mode Mode, now time.Time) (Session, error) {
	count := mode.QuestionCount()
	questions := make([]*problemgen.Question, 0, count)
	for i := 0; i < count; i++ {
		op := gen.RandomOperation()
		q, err := gen.Generate(op, mode.Difficulty(gen.Rand()))
		if err != nil {
			return Session{}, fmt.Errorf("generate question %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}
	return FromQuestions(mode, questions, now), nil
}

// FromQuestions builds a session over a prepared question list.
func FromQuestions(mode Mode, questions []*problemgen.Question, now time.Time) Session {
	s := Session{
		ID:             uuid.NewString(),
		Questions:      questions,
		TotalQuestions: len(questions),
		StartTime:      now,
		Mode:           mode,
	}
	if mode.HasCountdown() {
		s.TimeLeft = CountdownSeconds
	}
	return s
}

// Phase returns the current sub-state.
func (s Session) Phase() Phase {
	switch {
	case s.CurrentIndex >= s.TotalQuestions:
		return PhaseFinished
	case s.Answered:
		return PhaseShowingResult
	default:
		return PhaseAwaitingAnswer
	}
}

// Finished reports whether the session has ended.
func (s Session) Finished() bool {
	return s.Phase() == PhaseFinished
}

// Current returns the active question, or nil once finished.
func (s Session) Current() *problemgen.Question {
	if s.CurrentIndex >= s.TotalQuestions {
		return nil
	}
	return s.Questions[s.CurrentIndex]
}

// SubmitAnswer records value as the answer to the current question.
func (s Session) SubmitAnswer(value int) (Session, error) {
	if err := s.checkAwaiting(); err != nil {
		return s, err
	}

	q := s.Current()
	correct := value == q.Answer
	if correct {
		s.CorrectAnswers++
		s.Score += s.bonus()
	}
	s.Answered = true
	s.Selected = &value
	s.LastCorrect = correct
	return s, nil
}

// Timeout records a missed answer for the current question. No bonus is given.
func (s Session) Timeout() (Session, error) {
	if err := s.checkAwaiting(); err != nil {
		return s, err
	}
	s.Answered = true
	s.Selected = nil
	s.LastCorrect = false
	s.TimeLeft = 0
	return s, nil
}

// Tick advances the countdown by one second. When it reaches zero the
// question times out. Outside an awaiting countdown question it is a no-op.
func (s Session) Tick() Session {
	if !s.Mode.HasCountdown() || s.Phase() != PhaseAwaitingAnswer || s.TimeLeft <= 0 {
		return s
	}
	s.TimeLeft--
	if s.TimeLeft == 0 {
		s, _ = s.Timeout()
	}
	return s
}

// Advance moves to the next question, or finishes the session after
// the last one by setting EndTime to now.
func (s Session) Advance(now time.Time) (Session, error) {
	switch s.Phase() {
	case PhaseFinished:
		return s, ErrSessionFinished
	case PhaseAwaitingAnswer:
		return s, ErrNotAnswered
	}

	s.CurrentIndex++
	s.Answered = false
	s.Selected = nil
	s.LastCorrect = false

	if s.CurrentIndex >= s.TotalQuestions {
		s.CurrentIndex = s.TotalQuestions
		s.TimeLeft = 0
		end := now
		s.EndTime = &end
		return s, nil
	}

	if s.Mode.HasCountdown() {
		s.TimeLeft = CountdownSeconds
	}
	return s, nil
}

// Progress returns the 1-based question number and total for display.
func (s Session) Progress() (int, int) {
	n := s.CurrentIndex + 1
	if n > s.TotalQuestions {
		n = s.TotalQuestions
	}
	return n, s.TotalQuestions
}

func (s Session) checkAwaiting() error {
	switch s.Phase() {
	case PhaseFinished:
		return ErrSessionFinished
	case PhaseShowingResult:
		return ErrAlreadyAnswered
	}
	return nil
}

func (s Session) bonus() int {
	if s.Mode.HasCountdown() && s.TimeLeft > 0 {
		return s.TimeLeft
	}
	return FlatBonus
}
