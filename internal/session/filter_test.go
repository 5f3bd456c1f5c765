package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blizhe/internal/domain"
)

func baseConfig() domain.SessionConfig {
	return domain.SessionConfig{
		Target:      domain.TargetCouple,
		Stage:       domain.StageMiddle,
		Depth:       domain.DepthModeDeep,
		CrisisLevel: domain.CrisisLow,
		Count:       5,
		Categories:  []domain.Category{domain.CategoryRandom},
	}
}

func baseQuestion() domain.Question {
	return domain.Question{
		ID:               1,
		Text:             "q",
		Category:         domain.CategoryEveryday,
		Target:           domain.TargetAny,
		Stage:            domain.StageAny,
		Depth:            domain.DepthEasy,
		IsCrisisSuitable: true,
	}
}

func TestEligible_PremiumAlwaysExcluded(t *testing.T) {
	q := baseQuestion()
	q.IsPremium = true

	assert.Empty(t, Eligible([]domain.Question{q}, baseConfig()))
}

func TestEligible_TargetMatching(t *testing.T) {
	tests := []struct {
		name     string
		question domain.Target
		session  domain.Target
		want     bool
	}{
		{"any question matches couple", domain.TargetAny, domain.TargetCouple, true},
		{"any question matches family", domain.TargetAny, domain.TargetFamily, true},
		{"exact match", domain.TargetCouple, domain.TargetCouple, true},
		{"couple question excluded from family", domain.TargetCouple, domain.TargetFamily, false},
		{"family question excluded from couple", domain.TargetFamily, domain.TargetCouple, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuestion()
			q.Target = tt.question
			cfg := baseConfig()
			cfg.Target = tt.session

			assert.Equal(t, tt.want, isEligible(q, cfg))
		})
	}
}

func TestEligible_StageAdjacency(t *testing.T) {
	tests := []struct {
		name     string
		question domain.Stage
		session  domain.Stage
		want     bool
	}{
		{"any matches everything", domain.StageAny, domain.StageEarly, true},
		{"exact match", domain.StageMiddle, domain.StageMiddle, true},
		{"early question for middle session", domain.StageEarly, domain.StageMiddle, true},
		{"middle question for early session", domain.StageMiddle, domain.StageEarly, true},
		{"long question for middle session", domain.StageLong, domain.StageMiddle, true},
		{"early question for long session", domain.StageEarly, domain.StageLong, false},
		{"long question for early session", domain.StageLong, domain.StageEarly, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuestion()
			q.Stage = tt.question
			cfg := baseConfig()
			cfg.Stage = tt.session

			assert.Equal(t, tt.want, isEligible(q, cfg))
		})
	}
}

func TestEligible_CategorySelection(t *testing.T) {
	tests := []struct {
		name       string
		question   domain.Category
		categories []domain.Category
		want       bool
	}{
		{"random admits everything", domain.CategorySexIntimacy, []domain.Category{domain.CategoryRandom}, true},
		{"listed category passes", domain.CategoryEveryday, []domain.Category{domain.CategoryEveryday}, true},
		{"unlisted category fails", domain.CategoryParenting, []domain.Category{domain.CategoryEveryday}, false},
		{"random among others still admits all", domain.CategoryParenting, []domain.Category{domain.CategoryEveryday, domain.CategoryRandom}, true},
		{"one of several listed", domain.CategoryDreamsPlans, []domain.Category{domain.CategoryEveryday, domain.CategoryDreamsPlans}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuestion()
			q.Category = tt.question
			cfg := baseConfig()
			cfg.Categories = tt.categories

			assert.Equal(t, tt.want, isEligible(q, cfg))
		})
	}
}

func TestEligible_DepthPolicy(t *testing.T) {
	tests := []struct {
		name     string
		question domain.Depth
		mode     domain.DepthMode
		want     bool
	}{
		{"easy mode admits easy", domain.DepthEasy, domain.DepthModeEasy, true},
		{"easy mode rejects medium", domain.DepthMedium, domain.DepthModeEasy, false},
		{"easy mode rejects deep", domain.DepthDeep, domain.DepthModeEasy, false},
		{"mixed mode admits easy", domain.DepthEasy, domain.DepthModeMixed, true},
		{"mixed mode admits medium", domain.DepthMedium, domain.DepthModeMixed, true},
		{"mixed mode rejects deep", domain.DepthDeep, domain.DepthModeMixed, false},
		{"deep mode admits everything", domain.DepthDeep, domain.DepthModeDeep, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuestion()
			q.Depth = tt.question
			cfg := baseConfig()
			cfg.Depth = tt.mode

			assert.Equal(t, tt.want, isEligible(q, cfg))
		})
	}
}

func TestEligible_CrisisFilter(t *testing.T) {
	tests := []struct {
		name     string
		crisis   bool
		level    domain.CrisisLevel
		suitable bool
		allowed  []domain.CrisisLevel
		want     bool
	}{
		{"no crisis ignores suitability", false, domain.CrisisLow, false, nil, true},
		{"crisis rejects unsuitable", true, domain.CrisisLow, false, nil, false},
		{"crisis accepts suitable with empty list", true, domain.CrisisHigh, true, nil, true},
		{"level in allowed list", true, domain.CrisisMedium, true, []domain.CrisisLevel{domain.CrisisLow, domain.CrisisMedium}, true},
		{"level outside allowed list", true, domain.CrisisHigh, true, []domain.CrisisLevel{domain.CrisisLow, domain.CrisisMedium}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuestion()
			q.IsCrisisSuitable = tt.suitable
			q.CrisisAllowed = tt.allowed
			cfg := baseConfig()
			cfg.Crisis = tt.crisis
			cfg.CrisisLevel = tt.level

			assert.Equal(t, tt.want, isEligible(q, cfg))
		})
	}
}

func TestEligible_Deterministic(t *testing.T) {
	pool := []domain.Question{}
	for i := 1; i <= 10; i++ {
		q := baseQuestion()
		q.ID = i
		if i%2 == 0 {
			q.Depth = domain.DepthDeep
		}
		pool = append(pool, q)
	}
	cfg := baseConfig()
	cfg.Depth = domain.DepthModeMixed

	first := Eligible(pool, cfg)
	second := Eligible(pool, cfg)

	assert.Equal(t, first, second)
	for _, q := range first {
		assert.NotEqual(t, domain.DepthDeep, q.Depth)
	}
}
