package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blizhe/internal/domain"
)

func TestSetupValues_ConfigCategoryCollapsing(t *testing.T) {
	tests := []struct {
		name     string
		selected []domain.Category
		want     []domain.Category
	}{
		{
			"random alone stays",
			[]domain.Category{domain.CategoryRandom},
			[]domain.Category{domain.CategoryRandom},
		},
		{
			"random swallows other selections",
			[]domain.Category{domain.CategoryEveryday, domain.CategoryRandom, domain.CategoryParenting},
			[]domain.Category{domain.CategoryRandom},
		},
		{
			"empty selection falls back to random",
			nil,
			[]domain.Category{domain.CategoryRandom},
		},
		{
			"concrete selection preserved",
			[]domain.Category{domain.CategoryEveryday, domain.CategoryDreamsPlans},
			[]domain.Category{domain.CategoryEveryday, domain.CategoryDreamsPlans},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newSetupValues(5)
			v.target = domain.TargetCouple
			v.stage = domain.StageEarly
			v.depth = domain.DepthModeMixed
			v.categories = tt.selected

			assert.Equal(t, tt.want, v.Config().Categories)
		})
	}
}

func TestSetupValues_CrisisLevelForcedLowWhenOff(t *testing.T) {
	v := newSetupValues(5)
	v.crisis = false
	v.crisisLevel = domain.CrisisHigh

	cfg := v.Config()

	assert.False(t, cfg.Crisis)
	assert.Equal(t, domain.CrisisLow, cfg.CrisisLevel)
}

func TestSetupValues_CrisisLevelKeptWhenOn(t *testing.T) {
	v := newSetupValues(5)
	v.crisis = true
	v.crisisLevel = domain.CrisisMedium

	cfg := v.Config()

	assert.True(t, cfg.Crisis)
	assert.Equal(t, domain.CrisisMedium, cfg.CrisisLevel)
}

func TestSetupValues_DefaultCount(t *testing.T) {
	v := newSetupValues(10)
	assert.Equal(t, 10, v.Config().Count)
}

func TestCategoryOptions_PerTarget(t *testing.T) {
	categoriesFor := func(target domain.Target) []domain.Category {
		v := newSetupValues(5)
		v.target = target
		var cats []domain.Category
		for _, opt := range v.categoryOptions() {
			cats = append(cats, opt.Value)
		}
		return cats
	}

	t.Run("couple gets intimacy but not parenting", func(t *testing.T) {
		cats := categoriesFor(domain.TargetCouple)
		assert.Contains(t, cats, domain.CategorySexIntimacy)
		assert.Contains(t, cats, domain.CategoryPastChildhood)
		assert.NotContains(t, cats, domain.CategoryParenting)
	})

	t.Run("family skips childhood and intimacy", func(t *testing.T) {
		cats := categoriesFor(domain.TargetFamily)
		assert.Contains(t, cats, domain.CategoryParenting)
		assert.NotContains(t, cats, domain.CategoryPastChildhood)
		assert.NotContains(t, cats, domain.CategorySexIntimacy)
	})

	t.Run("parent and adult child gets childhood and parenting", func(t *testing.T) {
		cats := categoriesFor(domain.TargetParentAdultChild)
		assert.Contains(t, cats, domain.CategoryPastChildhood)
		assert.Contains(t, cats, domain.CategoryParenting)
		assert.NotContains(t, cats, domain.CategorySexIntimacy)
	})
}
