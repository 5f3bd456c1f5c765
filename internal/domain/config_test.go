package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() SessionConfig {
	return SessionConfig{
		Target:      TargetCouple,
		Stage:       StageEarly,
		Depth:       DepthModeMixed,
		CrisisLevel: CrisisLow,
		Count:       5,
		Categories:  []Category{CategoryRandom},
	}
}

func TestSessionConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SessionConfig)
		valid  bool
	}{
		{"complete config", func(*SessionConfig) {}, true},
		{"missing target", func(c *SessionConfig) { c.Target = "" }, false},
		{"missing stage", func(c *SessionConfig) { c.Stage = "" }, false},
		{"missing depth", func(c *SessionConfig) { c.Depth = "" }, false},
		{"any target", func(c *SessionConfig) { c.Target = TargetAny }, false},
		{"any stage", func(c *SessionConfig) { c.Stage = StageAny }, false},
		{"zero count", func(c *SessionConfig) { c.Count = 0 }, false},
		{"negative count", func(c *SessionConfig) { c.Count = -1 }, false},
		{"no categories", func(c *SessionConfig) { c.Categories = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrIncompleteConfig)
			}
		})
	}
}

func TestSessionConfig_WantsCategory(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		category   Category
		want       bool
	}{
		{"random admits all", []Category{CategoryRandom}, CategoryParenting, true},
		{"listed", []Category{CategoryEveryday, CategoryDreamsPlans}, CategoryDreamsPlans, true},
		{"unlisted", []Category{CategoryEveryday}, CategorySexIntimacy, false},
		{"empty admits nothing", nil, CategoryEveryday, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Categories = tt.categories

			assert.Equal(t, tt.want, cfg.WantsCategory(tt.category))
		})
	}
}

func TestDefaultSessionConfig(t *testing.T) {
	cfg := DefaultSessionConfig()

	assert.Equal(t, 5, cfg.Count)
	assert.Equal(t, CrisisLow, cfg.CrisisLevel)
	assert.Equal(t, []Category{CategoryRandom}, cfg.Categories)
	assert.False(t, cfg.Crisis)
}

func TestQuestion_AllowsCrisisLevel(t *testing.T) {
	t.Run("empty list allows any level", func(t *testing.T) {
		q := Question{}
		assert.True(t, q.AllowsCrisisLevel(CrisisHigh))
	})

	t.Run("restricted list", func(t *testing.T) {
		q := Question{CrisisAllowed: []CrisisLevel{CrisisLow, CrisisMedium}}
		assert.True(t, q.AllowsCrisisLevel(CrisisMedium))
		assert.False(t, q.AllowsCrisisLevel(CrisisHigh))
	})
}

func TestStage_Ordinal(t *testing.T) {
	assert.Equal(t, 0, StageEarly.Ordinal())
	assert.Equal(t, 1, StageMiddle.Ordinal())
	assert.Equal(t, 2, StageLong.Ordinal())
	assert.Equal(t, -1, StageAny.Ordinal())
	assert.Equal(t, -1, Stage("bogus").Ordinal())
}
