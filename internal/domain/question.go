package domain

// Target identifies who a conversation session is for.
type Target string

const (
	TargetCouple           Target = "couple"
	TargetFamily           Target = "family"
	TargetParentAdultChild Target = "parentAdultChild"

	// TargetAny marks a question as suitable for every audience.
	// It is valid on questions only, never on a session configuration.
	TargetAny Target = "any"
)

// Stage describes the maturity of the relationship.
type Stage string

const (
	StageEarly  Stage = "early"
	StageMiddle Stage = "middle"
	StageLong   Stage = "long"

	// StageAny marks a question as suitable for every stage.
	StageAny Stage = "any"
)

// Ordinal returns the position of the stage in the early→long
// progression, or -1 for StageAny and unknown values.
func (s Stage) Ordinal() int {
	switch s {
	case StageEarly:
		return 0
	case StageMiddle:
		return 1
	case StageLong:
		return 2
	default:
		return -1
	}
}

// Depth is the emotional intensity of a single question.
type Depth string

const (
	DepthEasy   Depth = "easy"
	DepthMedium Depth = "medium"
	DepthDeep   Depth = "deep"
)

// DepthMode is the session-level depth filter policy. It shares the
// "easy" and "deep" labels with Depth but has different semantics:
// "easy" admits only easy questions, "mixed" excludes deep ones, and
// "deep" admits everything.
type DepthMode string

const (
	DepthModeEasy  DepthMode = "easy"
	DepthModeMixed DepthMode = "mixed"
	DepthModeDeep  DepthMode = "deep"
)

// CrisisLevel is the intensity of a crisis-flagged session.
type CrisisLevel string

const (
	CrisisLow    CrisisLevel = "low"
	CrisisMedium CrisisLevel = "medium"
	CrisisHigh   CrisisLevel = "high"
)

// Category is the topic tag of a question.
type Category string

const (
	// CategoryRandom is the sentinel meaning "no category restriction".
	// It appears in session configurations only, never on questions.
	CategoryRandom Category = "random"

	CategoryEveryday        Category = "everyday"
	CategoryFeelingsSupport Category = "feelings_support"
	CategoryPastChildhood   Category = "past_childhood"
	CategoryDreamsPlans     Category = "dreams_plans"
	CategorySexIntimacy     Category = "sex_intimacy"
	CategoryParenting       Category = "parenting"
)

// Question is a single conversation prompt. Questions are immutable
// once the catalog is loaded.
type Question struct {
	ID               int           `json:"id"`
	Text             string        `json:"text"`
	Goal             string        `json:"goal,omitempty"`
	Hint             string        `json:"hint,omitempty"`
	TriggerWarning   string        `json:"triggerWarning,omitempty"`
	Category         Category      `json:"category,omitempty"`
	Target           Target        `json:"target"`
	Stage            Stage         `json:"stage"`
	Depth            Depth         `json:"depth"`
	IsCrisisSuitable bool          `json:"isCrisisSuitable"`
	CrisisAllowed    []CrisisLevel `json:"crisisAllowed,omitempty"`
	IsPremium        bool          `json:"isPremium"`
}

// AllowsCrisisLevel reports whether the question may be used in a
// crisis session at the given level. A question without an explicit
// CrisisAllowed list is permitted at any level.
func (q Question) AllowsCrisisLevel(level CrisisLevel) bool {
	if len(q.CrisisAllowed) == 0 {
		return true
	}
	for _, l := range q.CrisisAllowed {
		if l == level {
			return true
		}
	}
	return false
}
