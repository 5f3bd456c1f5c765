package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blizhe/internal/domain"
)

func startedEngine(t *testing.T, count int) *Engine {
	t.Helper()
	cfg := baseConfig()
	cfg.Count = count

	e := NewEngine(testPool(count))
	require.NoError(t, e.Start(cfg))
	e.Begin()
	return e
}

func TestEngine_Lifecycle(t *testing.T) {
	e := NewEngine(testPool(3))
	assert.Equal(t, StateNotStarted, e.State())

	cfg := baseConfig()
	cfg.Count = 3
	require.NoError(t, e.Start(cfg))
	assert.Equal(t, StateReady, e.State())

	e.Begin()
	assert.Equal(t, StateInProgress, e.State())

	e.Advance()
	e.Advance()
	assert.Equal(t, StateInProgress, e.State())

	e.Advance()
	assert.Equal(t, StateCompleted, e.State())
}

func TestEngine_StartFailures(t *testing.T) {
	t.Run("incomplete config", func(t *testing.T) {
		e := NewEngine(testPool(5))
		err := e.Start(domain.SessionConfig{})
		assert.ErrorIs(t, err, domain.ErrIncompleteConfig)
		assert.Equal(t, StateNotStarted, e.State())
	})

	t.Run("no eligible questions", func(t *testing.T) {
		e := NewEngine(nil)
		err := e.Start(baseConfig())
		assert.ErrorIs(t, err, domain.ErrNoEligibleQuestions)
		assert.Equal(t, StateNotStarted, e.State())
	})
}

func TestEngine_SkipWinsOverAnswered(t *testing.T) {
	e := startedEngine(t, 3)

	// Skip on first visit, advance cannot resurrect an answered mark.
	e.Skip()
	e.Advance()
	e.Advance()

	results := e.Results()
	require.NotNil(t, results)
	assert.Equal(t, 2, results.Answered)
	assert.Equal(t, 1, results.Skipped)
	assert.Equal(t, 3, results.Total)
}

func TestEngine_AnsweredAndSkippedDisjoint(t *testing.T) {
	e := startedEngine(t, 1)

	e.Skip()

	results := e.Results()
	require.NotNil(t, results)
	assert.Equal(t, 0, results.Answered)
	assert.Equal(t, 1, results.Skipped)
}

func TestEngine_ToggleFavorite(t *testing.T) {
	e := startedEngine(t, 2)
	q, _ := e.Current()

	favored, nowFavorite, ok := e.ToggleFavorite()
	require.True(t, ok)
	assert.True(t, nowFavorite)
	assert.Equal(t, q.ID, favored.ID)
	assert.True(t, e.IsFavorite())

	_, nowFavorite, ok = e.ToggleFavorite()
	require.True(t, ok)
	assert.False(t, nowFavorite)
	assert.False(t, e.IsFavorite())
}

func TestEngine_FavoriteTextsInSequenceOrder(t *testing.T) {
	e := startedEngine(t, 3)

	e.ToggleFavorite()
	first, _ := e.Current()
	e.Advance()
	e.Advance()
	e.ToggleFavorite()
	third, _ := e.Current()
	e.Advance()

	assert.Equal(t, []string{first.Text, third.Text}, e.FavoriteTexts())
}

func TestEngine_EndEarly(t *testing.T) {
	e := startedEngine(t, 5)

	e.Advance()
	e.EndEarly()

	assert.Equal(t, StateCompleted, e.State())
	results := e.Results()
	require.NotNil(t, results)
	assert.Equal(t, 1, results.Answered)
	assert.Equal(t, 5, results.Total)
	assert.Equal(t, domain.TierBase, results.Tier)
}

func TestEngine_CompletionTiers(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		answered int
		want     domain.CompletionTier
	}{
		{"all answered", 4, 4, domain.TierFull},
		{"exactly half", 4, 2, domain.TierHalf},
		{"more than half", 5, 3, domain.TierHalf},
		{"less than half", 5, 1, domain.TierBase},
		{"nothing answered", 3, 0, domain.TierBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := startedEngine(t, tt.total)
			for i := 0; i < tt.total; i++ {
				if i < tt.answered {
					e.Advance()
				} else {
					e.Skip()
				}
			}

			results := e.Results()
			require.NotNil(t, results)
			assert.Equal(t, tt.want, results.Tier)
		})
	}
}

func TestEngine_MinutesRounded(t *testing.T) {
	e := startedEngine(t, 1)
	start := time.Now()
	e.startedAt = start
	e.now = func() time.Time { return start.Add(12*time.Minute + 40*time.Second) }

	e.Advance()

	results := e.Results()
	require.NotNil(t, results)
	assert.Equal(t, 13, results.Minutes)
}

func TestEngine_Repeat(t *testing.T) {
	e := startedEngine(t, 3)
	e.Advance()
	e.EndEarly()

	require.NoError(t, e.Repeat())
	assert.Equal(t, StateReady, e.State())
	assert.Nil(t, e.Results())
	assert.Len(t, e.Questions(), 3)
}

func TestEngine_NotifiesOnTransitions(t *testing.T) {
	var events []Event
	e := NewEngine(testPool(1))
	e.SetNotify(func(ev Event) { events = append(events, ev) })

	cfg := baseConfig()
	cfg.Count = 1
	require.NoError(t, e.Start(cfg))
	e.Begin()
	e.ToggleFavorite()
	e.Advance()

	assert.Equal(t, []Event{EventStarted, EventBegan, EventFavorited, EventAdvanced, EventCompleted}, events)
}
