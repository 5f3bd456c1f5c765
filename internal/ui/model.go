package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"blizhe/internal/catalog"
	"blizhe/internal/config"
	"blizhe/internal/domain"
	"blizhe/internal/logging"
	"blizhe/internal/ports"
	"blizhe/internal/services"
	"blizhe/internal/session"
	"blizhe/internal/theme"
)

type screen int

const (
	screenWelcome screen = iota
	screenSetup
	screenPreSession
	screenQuestion
	screenResults
	screenHistory
)

// Model is the root Bubble Tea model driving all screens.
type Model struct {
	autoHints    bool
	catalog      *catalog.Catalog
	confirmClear bool
	confirmEnd   bool
	defaultCount int
	engine       *session.Engine
	errorMsg     string
	form         *huh.Form
	allFavorites []string
	height       int
	history      []domain.HistoryEntry
	keys         KeyMap
	player       ports.SoundPlayer
	progressBar  progress.Model
	screen       screen
	service      *services.SessionService
	setup        *setupValues
	showHint     bool
	soundOn      bool
	styles       theme.Styles
	tip          string
	width        int
}

// NewModel creates the root model.
func NewModel(
	cat *catalog.Catalog,
	service *services.SessionService,
	player ports.SoundPlayer,
	settings *config.Settings,
) *Model {
	return &Model{
		autoHints:    settings.AutoHintsEnabled(),
		catalog:      cat,
		defaultCount: settings.QuestionCount(),
		engine:       session.NewEngine(cat.Questions()),
		keys:         NewKeyMap(),
		player:       player,
		progressBar:  progress.New(progress.WithDefaultGradient()),
		screen:       screenWelcome,
		service:      service,
		soundOn:      settings.SoundEnabled(),
		styles:       theme.NewStyles(settings.ThemeName()),
	}
}

// Messages from async commands

type favoriteSavedMsg struct{ err error }

type sessionSavedMsg struct{ err error }

type historyLoadedMsg struct {
	entries   []domain.HistoryEntry
	favorites []string
	err       error
}

type dataClearedMsg struct{ err error }

// Commands

func (m *Model) saveFavoriteCmd(target domain.Target, text string) tea.Cmd {
	return func() tea.Msg {
		return favoriteSavedMsg{err: m.service.RecordFavorite(context.Background(), target, text)}
	}
}

func (m *Model) saveCompletedCmd(cfg domain.SessionConfig, results domain.Results, favorites []string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.service.SaveCompleted(context.Background(), cfg, results, favorites)
		return sessionSavedMsg{err: err}
	}
}

func (m *Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.service.History(context.Background(), 20)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		favorites, err := m.service.AllFavorites(context.Background())
		return historyLoadedMsg{entries: entries, favorites: favorites, err: err}
	}
}

func (m *Model) clearDataCmd() tea.Cmd {
	return func() tea.Msg {
		return dataClearedMsg{err: m.service.ClearData(context.Background())}
	}
}

func (m *Model) playSoundCmd(event string) tea.Cmd {
	if !m.soundOn {
		return nil
	}
	return func() tea.Msg {
		if err := m.player.PlaySoundForEvent(event); err != nil {
			logging.Logger.Debug("Failed to play sound", "event", event, "error", err)
		}
		return nil
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 8
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth > 0 {
			m.progressBar.Width = barWidth
		}

	case favoriteSavedMsg:
		// Ledger writes are best-effort; the session carries on.
		if msg.err != nil {
			logging.Logger.Warn("Failed to persist favorite", "error", msg.err)
		}
		return m, nil

	case sessionSavedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to persist session history", "error", msg.err)
		}
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to load history", "error", msg.err)
			m.errorMsg = "Could not load history"
		}
		m.history = msg.entries
		m.allFavorites = msg.favorites
		return m, nil

	case dataClearedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to clear data", "error", msg.err)
			m.errorMsg = "Could not clear data"
			return m, nil
		}
		m.history = nil
		m.allFavorites = nil
		return m, nil
	}

	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenSetup:
		return m.updateSetup(msg)
	case screenPreSession:
		return m.updatePreSession(msg)
	case screenQuestion:
		return m.updateQuestion(msg)
	case screenResults:
		return m.updateResults(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m, nil
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Begin), key.Matches(keyMsg, m.keys.NewSetup):
		return m, m.openSetup()
	case key.Matches(keyMsg, m.keys.History):
		m.screen = screenHistory
		m.confirmClear = false
		return m, m.loadHistoryCmd()
	}
	return m, nil
}

// openSetup resets the wizard and switches to the setup screen.
func (m *Model) openSetup() tea.Cmd {
	m.errorMsg = ""
	m.setup = newSetupValues(m.defaultCount)
	m.form = newSetupForm(m.setup)
	m.screen = screenSetup
	return m.form.Init()
}

func (m *Model) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
	}

	formModel, cmd := m.form.Update(msg)
	if f, ok := formModel.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		m.screen = screenWelcome
		return m, nil
	case huh.StateCompleted:
		return m, m.startSession()
	}

	return m, cmd
}

// startSession freezes the wizard answers and asks the engine to
// select questions. Failures keep the user on the welcome screen with
// a message suggesting what to change.
func (m *Model) startSession() tea.Cmd {
	cfg := m.setup.Config()
	err := m.engine.Start(cfg)
	switch {
	case errors.Is(err, domain.ErrNoEligibleQuestions):
		m.errorMsg = "No questions match these settings. Try fewer restrictions."
		m.screen = screenWelcome
		return nil
	case errors.Is(err, domain.ErrIncompleteConfig):
		m.errorMsg = "Please finish the session setup first."
		m.screen = screenWelcome
		return nil
	case err != nil:
		logging.Logger.Error("Failed to start session", "error", err)
		m.errorMsg = "Something went wrong starting the session."
		m.screen = screenWelcome
		return nil
	}

	m.screen = screenPreSession
	return nil
}

func (m *Model) updatePreSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		m.screen = screenWelcome
		return m, nil
	case key.Matches(keyMsg, m.keys.Begin):
		m.engine.Begin()
		m.screen = screenQuestion
		m.showHint = m.autoHints
		m.confirmEnd = false
		return m, m.playSoundCmd("begin")
	}
	return m, nil
}

func (m *Model) updateQuestion(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Advance):
		m.engine.Advance()
		return m, m.afterStep()

	case key.Matches(keyMsg, m.keys.Skip):
		m.engine.Skip()
		return m, m.afterStep()

	case key.Matches(keyMsg, m.keys.Favorite):
		q, nowFavorite, ok := m.engine.ToggleFavorite()
		if !ok {
			return m, nil
		}
		if nowFavorite {
			return m, tea.Batch(
				m.saveFavoriteCmd(m.engine.Config().Target, q.Text),
				m.playSoundCmd("favorite"),
			)
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Hint):
		m.showHint = !m.showHint
		return m, nil

	case key.Matches(keyMsg, m.keys.EndEarly):
		// Ending a session is terminal, so ask for a second press.
		if !m.confirmEnd {
			m.confirmEnd = true
			return m, nil
		}
		m.engine.EndEarly()
		return m, m.afterStep()
	}

	m.confirmEnd = false
	return m, nil
}

// afterStep handles the shared advance/skip/end aftermath: either the
// next question is shown or the session completed.
func (m *Model) afterStep() tea.Cmd {
	m.confirmEnd = false

	if m.engine.State() != session.StateCompleted {
		m.showHint = m.autoHints
		return nil
	}

	results := m.engine.Results()
	m.tip = m.catalog.RandomTip()
	m.screen = screenResults
	return tea.Batch(
		m.saveCompletedCmd(m.engine.Config(), *results, m.engine.FavoriteTexts()),
		m.playSoundCmd("complete"),
	)
}

func (m *Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Repeat):
		if err := m.engine.Repeat(); err != nil {
			m.errorMsg = "Could not restart with the same settings."
			m.screen = screenWelcome
			return m, nil
		}
		m.screen = screenPreSession
		return m, nil

	case key.Matches(keyMsg, m.keys.NewSetup):
		return m, m.openSetup()

	case key.Matches(keyMsg, m.keys.History):
		m.screen = screenHistory
		m.confirmClear = false
		return m, m.loadHistoryCmd()
	}
	return m, nil
}

func (m *Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit), key.Matches(keyMsg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Back):
		m.screen = screenWelcome
		m.confirmClear = false
		return m, nil

	case key.Matches(keyMsg, m.keys.Clear):
		if !m.confirmClear {
			m.confirmClear = true
			return m, nil
		}
		m.confirmClear = false
		return m, m.clearDataCmd()
	}

	m.confirmClear = false
	return m, nil
}
