package engine

import (
	"codelearn/models"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionBank(n int) []models.Question {
	bank := make([]models.Question, n)
	for i := range bank {
		bank[i] = models.Question{
			Question:   fmt.Sprintf("Q%d", i),
			Options:    []string{"right", "wrong", "other"},
			CorrectAns: "right",
		}
	}
	return bank
}

func TestNewSessionCapsAtTen(t *testing.T) {
	s := NewSession(questionBank(15))

	require.Len(t, s.Questions, 10)
	assert.Equal(t, StateInProgress, s.State)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, TimeLimitSeconds, s.TimeRemaining)

	// Each selected question is drawn from the bank, no repeats.
	seen := make(map[string]bool)
	for _, q := range s.Questions {
		assert.False(t, seen[q.Question], "question %s repeated", q.Question)
		seen[q.Question] = true
	}
}

func TestNewSessionUsesAllWhenBankIsSmall(t *testing.T) {
	s := NewSession(questionBank(3))
	assert.Len(t, s.Questions, 3)
	assert.Equal(t, StateInProgress, s.State)
}

func TestNewSessionEmptyBankIsTerminal(t *testing.T) {
	s := NewSession(nil)
	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, Summary{}, s.Summarize())
}

func TestTickCountsDownToCompletion(t *testing.T) {
	s := NewSession(questionBank(1))

	for i := 0; i < TimeLimitSeconds-1; i++ {
		s.Tick()
		require.Equal(t, StateInProgress, s.State, "completed early at tick %d", i+1)
	}
	assert.Equal(t, 1, s.TimeRemaining)

	s.Tick()
	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, 0, s.TimeRemaining)

	// Further ticks are no-ops on a terminal session.
	s.Tick()
	assert.Equal(t, 0, s.TimeRemaining)
}

func TestTimeoutWithNoAnswers(t *testing.T) {
	s := NewSession(questionBank(1))
	for i := 0; i < TimeLimitSeconds; i++ {
		s.Tick()
	}

	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, Summary{TotalQuestions: 1, Correct: 0, Wrong: 1, Points: 0}, s.Summarize())
}

func TestSubmitScoresCorrectAnswer(t *testing.T) {
	s := NewSession(questionBank(2))

	require.True(t, s.Submit("right"))
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, "right", s.SelectedAnswer)
}

func TestSubmitWrongAnswerDoesNotScore(t *testing.T) {
	s := NewSession(questionBank(2))

	require.True(t, s.Submit("wrong"))
	assert.Equal(t, 0, s.Score)
}

func TestSubmitIsNoopWhileLocked(t *testing.T) {
	s := NewSession(questionBank(2))

	require.True(t, s.Submit("wrong"))
	assert.False(t, s.Submit("right"), "second tap must be ignored while locked")
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, "wrong", s.SelectedAnswer)
}

func TestAdvanceMovesToNextQuestion(t *testing.T) {
	s := NewSession(questionBank(2))

	s.Submit("right")
	s.Advance()

	assert.Equal(t, 1, s.CurrentIndex)
	assert.False(t, s.Answered)
	assert.Empty(t, s.SelectedAnswer)
	assert.Equal(t, StateInProgress, s.State)
}

func TestAdvanceOnLastQuestionCompletes(t *testing.T) {
	s := NewSession(questionBank(1))

	s.Submit("right")
	s.Advance()

	assert.Equal(t, StateCompleted, s.State)
}

func TestAdvanceWithoutAnswerIsNoop(t *testing.T) {
	s := NewSession(questionBank(2))
	s.Advance()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, StateInProgress, s.State)
}

func TestStaleAdvanceAfterTimeoutIsNoop(t *testing.T) {
	s := NewSession(questionBank(2))
	s.Submit("right")

	// Countdown expires during the answer lock window.
	for i := 0; i < TimeLimitSeconds; i++ {
		s.Tick()
	}
	require.Equal(t, StateCompleted, s.State)

	s.Advance()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, StateCompleted, s.State)
}

func TestScoreNeverExceedsQuestionCount(t *testing.T) {
	s := NewSession(questionBank(3))
	for s.State == StateInProgress {
		s.Submit("right")
		s.Submit("right") // double-tap
		s.Advance()
	}
	assert.Equal(t, 3, s.Score)
	assert.LessOrEqual(t, s.Score, len(s.Questions))
}

func TestSummaryFullSession(t *testing.T) {
	s := NewSession(questionBank(3))

	s.Submit("right")
	s.Advance()
	s.Submit("wrong")
	s.Advance()
	s.Submit("right")
	s.Advance()

	require.Equal(t, StateCompleted, s.State)
	summary := s.Summarize()
	assert.Equal(t, Summary{TotalQuestions: 3, Correct: 2, Wrong: 1, Points: 20}, summary)
	assert.Equal(t, summary.TotalQuestions, summary.Correct+summary.Wrong)
}

func TestUnanswerableQuestionNeverScores(t *testing.T) {
	// Malformed definition: correctAns not among the options. Tolerated;
	// the question simply cannot be answered correctly.
	bank := []models.Question{{
		Question:   "broken",
		Options:    []string{"a", "b"},
		CorrectAns: "zzz",
	}}
	s := NewSession(bank)

	s.Submit("a")
	s.Advance()

	assert.Equal(t, Summary{TotalQuestions: 1, Correct: 0, Wrong: 1, Points: 0}, s.Summarize())
}

func TestCurrentQuestion(t *testing.T) {
	s := NewSession(questionBank(1))
	require.NotNil(t, s.CurrentQuestion())

	s.Submit("right")
	s.Advance()
	assert.Nil(t, s.CurrentQuestion())
}
