package session

import "blizhe/internal/domain"

// Eligible returns the subset of questions that may appear in a
// session with the given configuration. The predicate is pure: the
// same inputs always yield the same subset, in catalog order.
func Eligible(questions []domain.Question, cfg domain.SessionConfig) []domain.Question {
	var eligible []domain.Question
	for _, q := range questions {
		if isEligible(q, cfg) {
			eligible = append(eligible, q)
		}
	}
	return eligible
}

// isEligible applies every filter rule conjunctively.
func isEligible(q domain.Question, cfg domain.SessionConfig) bool {
	// Premium questions are reserved and always excluded.
	if q.IsPremium {
		return false
	}

	if q.Target != domain.TargetAny && q.Target != cfg.Target {
		return false
	}

	// Stage filter: exact match or one step adjacent. early↔long is
	// the only excluded pairing.
	if q.Stage != domain.StageAny && q.Stage != cfg.Stage {
		dist := q.Stage.Ordinal() - cfg.Stage.Ordinal()
		if dist < -1 || dist > 1 {
			return false
		}
	}

	if !cfg.WantsCategory(q.Category) {
		return false
	}

	// Depth policy: "easy" admits easy only, "mixed" excludes deep,
	// "deep" admits everything.
	switch cfg.Depth {
	case domain.DepthModeEasy:
		if q.Depth != domain.DepthEasy {
			return false
		}
	case domain.DepthModeMixed:
		if q.Depth == domain.DepthDeep {
			return false
		}
	}

	if cfg.Crisis {
		if !q.IsCrisisSuitable {
			return false
		}
		if !q.AllowsCrisisLevel(cfg.CrisisLevel) {
			return false
		}
	}

	return true
}
