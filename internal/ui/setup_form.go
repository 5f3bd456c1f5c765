package ui

import (
	"github.com/charmbracelet/huh"

	"blizhe/internal/domain"
)

// setupValues holds the wizard's answers while the form runs.
type setupValues struct {
	target      domain.Target
	stage       domain.Stage
	depth       domain.DepthMode
	crisis      bool
	crisisLevel domain.CrisisLevel
	count       int
	categories  []domain.Category
}

// newSetupValues seeds the wizard from the default configuration and
// the configured question count.
func newSetupValues(defaultCount int) *setupValues {
	defaults := domain.DefaultSessionConfig()
	return &setupValues{
		crisisLevel: defaults.CrisisLevel,
		count:       defaultCount,
		categories:  defaults.Categories,
	}
}

// Config freezes the wizard answers into a session configuration.
// The "random" sentinel always stands alone, and an empty category
// selection falls back to it.
func (v *setupValues) Config() domain.SessionConfig {
	categories := v.categories
	for _, c := range categories {
		if c == domain.CategoryRandom {
			categories = []domain.Category{domain.CategoryRandom}
			break
		}
	}
	if len(categories) == 0 {
		categories = []domain.Category{domain.CategoryRandom}
	}

	crisisLevel := v.crisisLevel
	if !v.crisis {
		crisisLevel = domain.CrisisLow
	}

	return domain.SessionConfig{
		Target:      v.target,
		Stage:       v.stage,
		Depth:       v.depth,
		Crisis:      v.crisis,
		CrisisLevel: crisisLevel,
		Count:       v.count,
		Categories:  categories,
	}
}

// categoryOptions narrows the category choices to the chosen
// audience: intimacy is couples-only, parenting is for families, and
// childhood questions are hidden for family sessions with children.
func (v *setupValues) categoryOptions() []huh.Option[domain.Category] {
	options := []huh.Option[domain.Category]{
		huh.NewOption("Surprise us", domain.CategoryRandom),
		huh.NewOption("Everyday life", domain.CategoryEveryday),
		huh.NewOption("Feelings & support", domain.CategoryFeelingsSupport),
		huh.NewOption("Dreams & plans", domain.CategoryDreamsPlans),
	}
	if v.target != domain.TargetFamily {
		options = append(options, huh.NewOption("The past & childhood", domain.CategoryPastChildhood))
	}
	if v.target == domain.TargetCouple {
		options = append(options, huh.NewOption("Intimacy", domain.CategorySexIntimacy))
	} else {
		options = append(options, huh.NewOption("Parenting", domain.CategoryParenting))
	}
	return options
}

// newSetupForm builds the multi-step session setup wizard.
func newSetupForm(v *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Target]().
				Title("Who is this conversation for?").
				Options(
					huh.NewOption("A couple", domain.TargetCouple),
					huh.NewOption("The whole family", domain.TargetFamily),
					huh.NewOption("A parent and adult child", domain.TargetParentAdultChild),
				).
				Value(&v.target),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Stage]().
				Title("How far along are these conversations?").
				Options(
					huh.NewOption("We're just starting to talk like this", domain.StageEarly),
					huh.NewOption("We've been at it for a while", domain.StageMiddle),
					huh.NewOption("We have a long history together", domain.StageLong),
				).
				Value(&v.stage),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Is this an emotionally sensitive time?").
				Description("Crisis mode keeps the questions gentle").
				Affirmative("Yes").
				Negative("No").
				Value(&v.crisis),
		),
		huh.NewGroup(
			huh.NewSelect[domain.CrisisLevel]().
				Title("How intense does it feel right now?").
				Options(
					huh.NewOption("We're mostly okay", domain.CrisisLow),
					huh.NewOption("Things are tense", domain.CrisisMedium),
					huh.NewOption("It's really hard", domain.CrisisHigh),
				).
				Value(&v.crisisLevel),
		).WithHideFunc(func() bool { return !v.crisis }),
		huh.NewGroup(
			huh.NewSelect[domain.DepthMode]().
				Title("How deep should the questions go?").
				Options(
					huh.NewOption("Keep it light", domain.DepthModeEasy),
					huh.NewOption("A mix, nothing too heavy", domain.DepthModeMixed),
					huh.NewOption("We're ready for deep ones", domain.DepthModeDeep),
				).
				Value(&v.depth),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How many questions?").
				Options(
					huh.NewOption("3 — a short check-in", 3),
					huh.NewOption("5 — a proper talk", 5),
					huh.NewOption("10 — a long evening", 10),
					huh.NewOption("15 — no plans tonight", 15),
				).
				Value(&v.count),
		),
		huh.NewGroup(
			huh.NewMultiSelect[domain.Category]().
				Title("Any topics in particular?").
				Description("Leave empty to let us pick").
				OptionsFunc(v.categoryOptions, &v.target).
				Value(&v.categories),
		),
	)
}
