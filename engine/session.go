package engine

import (
	"codelearn/models"
	"math/rand"
)

// State is the lifecycle state of a quiz session.
type State string

const (
	StateInProgress State = "IN_PROGRESS"
	StateCompleted  State = "COMPLETED"
)

const (
	// MaxQuestions caps how many questions one session draws from a bank.
	MaxQuestions = 10
	// TimeLimitSeconds is the countdown every session starts from.
	TimeLimitSeconds = 120
	// PointsPerCorrect is the fixed score multiplier shown on the summary.
	PointsPerCorrect = 10
)

// Session is one timed quiz attempt. It lives in memory only: sessions are
// never persisted and navigating back into a quiz always starts a new one.
// All methods are plain state transitions; timing is driven externally by
// whoever calls Tick on a 1-second cadence.
type Session struct {
	Questions      []models.Question
	CurrentIndex   int
	Score          int
	TimeRemaining  int
	SelectedAnswer string
	Answered       bool
	State          State
}

// Summary is the terminal report of a session.
type Summary struct {
	TotalQuestions int `json:"totalQuestions"`
	Correct        int `json:"correct"`
	Wrong          int `json:"wrong"`
	Points         int `json:"points"`
}

// NewSession draws up to MaxQuestions from the bank via a uniform shuffle
// without replacement and starts the countdown. An empty bank produces a
// session that is already terminal; its summary reports all zeros.
func NewSession(bank []models.Question) *Session {
	selected := make([]models.Question, 0, MaxQuestions)
	for _, i := range rand.Perm(len(bank)) {
		if len(selected) == MaxQuestions {
			break
		}
		selected = append(selected, bank[i])
	}

	s := &Session{
		Questions:     selected,
		TimeRemaining: TimeLimitSeconds,
		State:         StateInProgress,
	}
	if len(selected) == 0 {
		s.State = StateCompleted
	}
	return s
}

// Tick advances the countdown by one second. Reaching zero completes the
// session immediately, regardless of the current question index; this is the
// sole time-based forcing function, so a session always terminates within
// TimeLimitSeconds of starting even with no user interaction.
func (s *Session) Tick() {
	if s.State != StateInProgress {
		return
	}
	s.TimeRemaining--
	if s.TimeRemaining <= 0 {
		s.TimeRemaining = 0
		s.State = StateCompleted
	}
}

// Submit records an answer for the current question. The first submission
// wins: while an answer is locked in, further submissions are ignored until
// Advance clears it. Returns whether the answer was accepted.
func (s *Session) Submit(answer string) bool {
	if s.State != StateInProgress || s.Answered {
		return false
	}
	s.Answered = true
	s.SelectedAnswer = answer
	if answer == s.Questions[s.CurrentIndex].CorrectAns {
		s.Score++
	}
	return true
}

// Advance moves past a locked-in answer: either to the next question or, on
// the last question, to the terminal state. A no-op unless an answer is
// currently locked, so a stale advance firing after the countdown already
// completed the session changes nothing.
func (s *Session) Advance() {
	if s.State != StateInProgress || !s.Answered {
		return
	}
	s.Answered = false
	s.SelectedAnswer = ""
	if s.CurrentIndex >= len(s.Questions)-1 {
		s.State = StateCompleted
		return
	}
	s.CurrentIndex++
}

// CurrentQuestion returns the question awaiting an answer, or nil once the
// session is terminal.
func (s *Session) CurrentQuestion() *models.Question {
	if s.State != StateInProgress || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// Summarize reports the terminal score breakdown.
func (s *Session) Summarize() Summary {
	total := len(s.Questions)
	return Summary{
		TotalQuestions: total,
		Correct:        s.Score,
		Wrong:          total - s.Score,
		Points:         s.Score * PointsPerCorrect,
	}
}
