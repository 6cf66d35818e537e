package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerStartReturnsView(t *testing.T) {
	m := NewManager()
	view := m.Start("Java Basics", questionBank(5))

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "Java Basics", view.QuizTitle)
	assert.Equal(t, StateInProgress, view.State)
	assert.Equal(t, 5, view.TotalQuestions)
	assert.Equal(t, TimeLimitSeconds, view.TimeRemaining)
	require.NotNil(t, view.Question)
	assert.Empty(t, view.CorrectAns, "correct option must be hidden before an answer is locked")

	require.NoError(t, m.Cancel(view.SessionID))
}

func TestManagerGetUnknownSession(t *testing.T) {
	m := NewManager()
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerSubmitLocksThenAdvances(t *testing.T) {
	m := NewManager(WithTickInterval(time.Hour), WithLockDelay(10*time.Millisecond))
	view := m.Start("Quiz", questionBank(2))

	locked, err := m.Submit(view.SessionID, "right")
	require.NoError(t, err)
	assert.Equal(t, "right", locked.SelectedAnswer)
	assert.Equal(t, "right", locked.CorrectAns, "correct option revealed during the lock window")
	assert.Equal(t, 0, locked.CurrentIndex)

	// A second tap inside the lock window is ignored.
	again, err := m.Submit(view.SessionID, "wrong")
	require.NoError(t, err)
	assert.Equal(t, "right", again.SelectedAnswer)

	// After the lock delay the session moves to the next question.
	require.Eventually(t, func() bool {
		v, err := m.Get(view.SessionID)
		return err == nil && v.CurrentIndex == 1
	}, time.Second, 5*time.Millisecond)

	v, err := m.Get(view.SessionID)
	require.NoError(t, err)
	assert.Empty(t, v.SelectedAnswer)
	assert.Empty(t, v.CorrectAns)

	require.NoError(t, m.Cancel(view.SessionID))
}

func TestManagerCompletesAfterLastAnswer(t *testing.T) {
	m := NewManager(
		WithTickInterval(time.Hour),
		WithLockDelay(5*time.Millisecond),
		WithRetention(time.Hour),
	)
	view := m.Start("Quiz", questionBank(1))

	_, err := m.Submit(view.SessionID, "right")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		v, err := m.Get(view.SessionID)
		return err == nil && v.State == StateCompleted
	}, time.Second, 5*time.Millisecond)

	v, err := m.Get(view.SessionID)
	require.NoError(t, err)
	require.NotNil(t, v.Summary)
	assert.Equal(t, Summary{TotalQuestions: 1, Correct: 1, Wrong: 0, Points: 10}, *v.Summary)
}

func TestManagerCountdownForcesCompletion(t *testing.T) {
	m := NewManager(WithTickInterval(time.Millisecond), WithRetention(time.Hour))
	view := m.Start("Quiz", questionBank(3))

	require.Eventually(t, func() bool {
		v, err := m.Get(view.SessionID)
		return err == nil && v.State == StateCompleted
	}, 5*time.Second, 10*time.Millisecond)

	v, err := m.Get(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, v.TimeRemaining)
	require.NotNil(t, v.Summary)
	assert.Equal(t, 0, v.Summary.Correct)
}

func TestManagerCancelDiscardsSession(t *testing.T) {
	m := NewManager(WithTickInterval(time.Hour), WithLockDelay(time.Hour))
	view := m.Start("Quiz", questionBank(2))

	// A pending lock advance must die with the session.
	_, err := m.Submit(view.SessionID, "right")
	require.NoError(t, err)

	require.NoError(t, m.Cancel(view.SessionID))
	_, err = m.Get(view.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, m.Cancel(view.SessionID), ErrSessionNotFound)
	assert.Equal(t, 0, m.Count())
}

func TestManagerEmptyBankTerminalImmediately(t *testing.T) {
	m := NewManager(WithRetention(time.Hour))
	view := m.Start("Empty", nil)

	assert.Equal(t, StateCompleted, view.State)
	require.NotNil(t, view.Summary)
	assert.Equal(t, Summary{}, *view.Summary)
}

func TestManagerCompletedSessionExpires(t *testing.T) {
	m := NewManager(
		WithTickInterval(time.Hour),
		WithLockDelay(time.Millisecond),
		WithRetention(20*time.Millisecond),
	)
	view := m.Start("Quiz", questionBank(1))

	_, err := m.Submit(view.SessionID, "right")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := m.Get(view.SessionID)
		return err != nil
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, m.Count())
}

func TestManagerFreshSessionPerStart(t *testing.T) {
	m := NewManager(WithTickInterval(time.Hour))
	first := m.Start("Quiz", questionBank(2))
	second := m.Start("Quiz", questionBank(2))

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, 2, m.Count())

	require.NoError(t, m.Cancel(first.SessionID))
	require.NoError(t, m.Cancel(second.SessionID))
}
