package engine

import (
	"codelearn/models"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or already-torn-down sessions.
var ErrSessionNotFound = errors.New("quiz session not found")

const (
	defaultTickInterval = time.Second
	defaultLockDelay    = time.Second
	defaultRetention    = 10 * time.Minute
)

// QuestionView is the client-facing shape of the current question. The
// correct option is withheld until the answer lock, then exposed so the UI
// can paint correct/incorrect highlighting.
type QuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// View is a snapshot of a running session handed to the HTTP layer on every
// state change.
type View struct {
	SessionID      string        `json:"sessionId"`
	QuizTitle      string        `json:"quizTitle"`
	State          State         `json:"state"`
	CurrentIndex   int           `json:"currentIndex"`
	TotalQuestions int           `json:"totalQuestions"`
	TimeRemaining  int           `json:"timeRemaining"`
	Question       *QuestionView `json:"currentQuestion,omitempty"`
	SelectedAnswer string        `json:"selectedAnswer,omitempty"`
	CorrectAns     string        `json:"correctAns,omitempty"`
	Summary        *Summary      `json:"summary,omitempty"`
}

// liveSession pairs a Session with the timers that drive it.
type liveSession struct {
	mu        sync.Mutex
	id        string
	quizTitle string
	sess      *Session
	stop      chan struct{}
	stopOnce  sync.Once
	lockTimer *time.Timer
}

func (ls *liveSession) stopRunner() {
	ls.stopOnce.Do(func() { close(ls.stop) })
}

// Manager owns every in-flight quiz session. Each session gets a dedicated
// countdown goroutine and a one-shot answer-lock timer; both are cancelled
// on teardown so no stale callback ever mutates a discarded session.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*liveSession

	tickInterval time.Duration
	lockDelay    time.Duration
	retention    time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithTickInterval overrides the countdown cadence (for testing).
func WithTickInterval(d time.Duration) Option {
	return func(m *Manager) { m.tickInterval = d }
}

// WithLockDelay overrides the answer-lock delay (for testing).
func WithLockDelay(d time.Duration) Option {
	return func(m *Manager) { m.lockDelay = d }
}

// WithRetention overrides how long completed sessions stay queryable.
func WithRetention(d time.Duration) Option {
	return func(m *Manager) { m.retention = d }
}

// NewManager creates an empty session table.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions:     make(map[string]*liveSession),
		tickInterval: defaultTickInterval,
		lockDelay:    defaultLockDelay,
		retention:    defaultRetention,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start creates a fresh session from a quiz definition and begins its
// countdown. Every call starts from scratch: attempts are never resumed.
func (m *Manager) Start(quizTitle string, bank []models.Question) View {
	ls := &liveSession{
		id:        uuid.NewString(),
		quizTitle: quizTitle,
		sess:      NewSession(bank),
		stop:      make(chan struct{}),
	}

	m.mu.Lock()
	m.sessions[ls.id] = ls
	m.mu.Unlock()

	if ls.sess.State == StateCompleted {
		// Empty bank: terminal from the start, nothing to count down.
		m.scheduleRemoval(ls.id)
	} else {
		go m.run(ls)
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	return m.snapshot(ls)
}

// run drives the per-session countdown until completion or cancellation.
func (m *Manager) run(ls *liveSession) {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ls.stop:
			return
		case <-ticker.C:
			ls.mu.Lock()
			ls.sess.Tick()
			completed := ls.sess.State == StateCompleted
			ls.mu.Unlock()
			if completed {
				m.scheduleRemoval(ls.id)
				return
			}
		}
	}
}

// Get returns the current view of a session.
func (m *Manager) Get(sessionID string) (View, error) {
	ls, err := m.lookup(sessionID)
	if err != nil {
		return View{}, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return m.snapshot(ls), nil
}

// Submit records an answer for the session's current question. Accepted
// answers are locked for the lock delay, then the session advances; repeated
// submissions inside the lock window are ignored, which serializes question
// transitions and prevents double-scoring from rapid double-taps.
func (m *Manager) Submit(sessionID, answer string) (View, error) {
	ls, err := m.lookup(sessionID)
	if err != nil {
		return View{}, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.sess.Submit(answer) {
		ls.lockTimer = time.AfterFunc(m.lockDelay, func() {
			ls.mu.Lock()
			ls.sess.Advance()
			completed := ls.sess.State == StateCompleted
			ls.mu.Unlock()
			if completed {
				ls.stopRunner()
				m.scheduleRemoval(ls.id)
			}
		})
	}
	return m.snapshot(ls), nil
}

// Cancel tears a session down: the countdown goroutine exits, any pending
// answer-lock advance is cancelled, and the session is forgotten. Called
// when the learner leaves the quiz screen before completion.
func (m *Manager) Cancel(sessionID string) error {
	m.mu.Lock()
	ls, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	ls.stopRunner()
	ls.mu.Lock()
	if ls.lockTimer != nil {
		ls.lockTimer.Stop()
	}
	ls.mu.Unlock()
	return nil
}

// Count reports how many sessions are currently tracked.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) lookup(sessionID string) (*liveSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ls, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ls, nil
}

// scheduleRemoval drops a completed session after the retention window so
// abandoned summaries do not accumulate.
func (m *Manager) scheduleRemoval(sessionID string) {
	time.AfterFunc(m.retention, func() {
		m.mu.Lock()
		delete(m.sessions, sessionID)
		m.mu.Unlock()
	})
}

// snapshot builds a client view. Caller must hold ls.mu.
func (m *Manager) snapshot(ls *liveSession) View {
	s := ls.sess
	view := View{
		SessionID:      ls.id,
		QuizTitle:      ls.quizTitle,
		State:          s.State,
		CurrentIndex:   s.CurrentIndex,
		TotalQuestions: len(s.Questions),
		TimeRemaining:  s.TimeRemaining,
	}

	if q := s.CurrentQuestion(); q != nil {
		view.Question = &QuestionView{Question: q.Question, Options: q.Options}
	}
	if s.Answered {
		// Locked: reveal the correct option so the client can highlight it.
		view.SelectedAnswer = s.SelectedAnswer
		view.CorrectAns = s.Questions[s.CurrentIndex].CorrectAns
	}
	if s.State == StateCompleted {
		summary := s.Summarize()
		view.Summary = &summary
	}
	return view
}
