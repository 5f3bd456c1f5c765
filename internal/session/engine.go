package session

import (
	"time"

	"blizhe/internal/domain"
	"blizhe/internal/logging"
)

// State is the lifecycle state of a session engine.
type State string

const (
	StateNotStarted State = "not_started"
	StateReady      State = "ready" // questions selected, pre-session screen
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// Event identifies a transition that platform collaborators (sound,
// presentation) may react to.
type Event string

const (
	EventStarted     Event = "started"
	EventBegan       Event = "began"
	EventAdvanced    Event = "advanced"
	EventFavorited   Event = "favorited"
	EventUnfavorited Event = "unfavorited"
	EventCompleted   Event = "completed"
)

// Engine drives one session from selection through completion. It is
// single-caller by construction: all methods are synchronous and no
// internal goroutines touch its state.
type Engine struct {
	pool []domain.Question
	cfg  domain.SessionConfig

	state     State
	questions []domain.Question
	index     int
	answered  map[int]struct{}
	skipped   map[int]struct{}
	favorites map[int]struct{}
	startedAt time.Time
	results   *domain.Results

	now    func() time.Time
	notify func(Event)
}

// NewEngine creates an engine drawing questions from the given pool.
func NewEngine(pool []domain.Question) *Engine {
	return &Engine{
		pool:  pool,
		state: StateNotStarted,
		now:   time.Now,
	}
}

// SetNotify registers a transition listener. A nil listener disables
// notifications.
func (e *Engine) SetNotify(fn func(Event)) {
	e.notify = fn
}

func (e *Engine) emit(ev Event) {
	if e.notify != nil {
		e.notify(ev)
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Config returns the configuration the current run was started with.
func (e *Engine) Config() domain.SessionConfig {
	return e.cfg
}

// Start validates the configuration, selects the question sequence,
// and moves to the pre-session Ready state. Any previous run state is
// discarded. On failure the engine stays (or returns to) NotStarted.
func (e *Engine) Start(cfg domain.SessionConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	selected := Select(e.pool, cfg)
	if len(selected) == 0 {
		e.state = StateNotStarted
		return domain.ErrNoEligibleQuestions
	}

	e.cfg = cfg
	e.questions = selected
	e.index = 0
	e.answered = make(map[int]struct{})
	e.skipped = make(map[int]struct{})
	e.favorites = make(map[int]struct{})
	e.startedAt = time.Time{}
	e.results = nil
	e.state = StateReady

	logging.Logger.Info("Session prepared",
		"target", cfg.Target,
		"stage", cfg.Stage,
		"depth", cfg.Depth,
		"crisis", cfg.Crisis,
		"questions", len(selected))

	e.emit(EventStarted)
	return nil
}

// Begin captures the session start time and shows the first question.
func (e *Engine) Begin() {
	if e.state != StateReady {
		return
	}
	e.startedAt = e.now()
	e.state = StateInProgress
	e.emit(EventBegan)
}

// Current returns the question at the cursor.
func (e *Engine) Current() (domain.Question, bool) {
	if e.state != StateInProgress {
		return domain.Question{}, false
	}
	return e.questions[e.index], true
}

// Progress reports the 1-based position and total question count.
func (e *Engine) Progress() (current, total int) {
	return e.index + 1, len(e.questions)
}

// Advance marks the current question answered (unless it was already
// answered or skipped) and moves to the next question, completing the
// session at the last index.
func (e *Engine) Advance() {
	if e.state != StateInProgress {
		return
	}
	q := e.questions[e.index]
	if _, answered := e.answered[q.ID]; !answered {
		if _, skipped := e.skipped[q.ID]; !skipped {
			e.answered[q.ID] = struct{}{}
		}
	}
	e.emit(EventAdvanced)
	e.step()
}

// Skip marks the current question skipped — removing any prior
// answered mark, skip wins within one visit — and moves on.
func (e *Engine) Skip() {
	if e.state != StateInProgress {
		return
	}
	q := e.questions[e.index]
	e.skipped[q.ID] = struct{}{}
	delete(e.answered, q.ID)
	e.emit(EventAdvanced)
	e.step()
}

func (e *Engine) step() {
	if e.index < len(e.questions)-1 {
		e.index++
		return
	}
	e.complete()
}

// ToggleFavorite flips the favorite mark on the current question. It
// returns the question and whether it is now a favorite, so the
// caller can write newly-favorited texts through to the ledger.
func (e *Engine) ToggleFavorite() (domain.Question, bool, bool) {
	if e.state != StateInProgress {
		return domain.Question{}, false, false
	}
	q := e.questions[e.index]
	if _, ok := e.favorites[q.ID]; ok {
		delete(e.favorites, q.ID)
		e.emit(EventUnfavorited)
		return q, false, true
	}
	e.favorites[q.ID] = struct{}{}
	e.emit(EventFavorited)
	return q, true, true
}

// IsFavorite reports whether the current question is favorited.
func (e *Engine) IsFavorite() bool {
	if e.state != StateInProgress {
		return false
	}
	_, ok := e.favorites[e.questions[e.index].ID]
	return ok
}

// EndEarly terminates an in-progress session immediately, keeping all
// outcome state recorded so far.
func (e *Engine) EndEarly() {
	if e.state != StateInProgress {
		return
	}
	e.complete()
}

// Repeat starts a fresh run with the same configuration; the
// selection is re-randomized.
func (e *Engine) Repeat() error {
	return e.Start(e.cfg)
}

func (e *Engine) complete() {
	e.state = StateCompleted
	e.results = &domain.Results{
		Answered:  len(e.answered),
		Skipped:   len(e.skipped),
		Favorited: len(e.favorites),
		Total:     len(e.questions),
		Minutes:   domain.ElapsedMinutes(e.startedAt, e.now()),
		Tier:      domain.TierFor(len(e.answered), len(e.questions)),
	}
	e.emit(EventCompleted)
}

// Results returns the summary of a completed session, or nil while
// the session is still running.
func (e *Engine) Results() *domain.Results {
	return e.results
}

// Questions returns the sequence selected for this run.
func (e *Engine) Questions() []domain.Question {
	return e.questions
}

// FavoriteTexts returns the texts of favorited questions in sequence
// order.
func (e *Engine) FavoriteTexts() []string {
	var texts []string
	for _, q := range e.questions {
		if _, ok := e.favorites[q.ID]; ok {
			texts = append(texts, q.Text)
		}
	}
	return texts
}
