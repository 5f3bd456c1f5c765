package catalog

import "blizhe/internal/domain"

func allLevels() []domain.CrisisLevel {
	return []domain.CrisisLevel{domain.CrisisLow, domain.CrisisMedium, domain.CrisisHigh}
}

func lowMedium() []domain.CrisisLevel {
	return []domain.CrisisLevel{domain.CrisisLow, domain.CrisisMedium}
}

func lowOnly() []domain.CrisisLevel {
	return []domain.CrisisLevel{domain.CrisisLow}
}

// builtinQuestions is the fallback question set used when no external
// catalog is available.
func builtinQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:               1,
			Text:             "What moment from the past week brought you the most joy?",
			Goal:             "Noticing the positive in everyday life",
			Hint:             "Tell what exactly made that moment special",
			Category:         domain.CategoryEveryday,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               2,
			Text:             "What small things make your day better?",
			Goal:             "Learning the little joys of the other person",
			Hint:             "Maybe it's coffee, music, a walk?",
			Category:         domain.CategoryEveryday,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               3,
			Text:             "If tomorrow were a day off with no obligations, what would you want to do?",
			Goal:             "Understanding rest needs",
			Hint:             "Dream together, don't limit the fantasy",
			Category:         domain.CategoryEveryday,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               4,
			Text:             "What are you grateful for today?",
			Goal:             "Practicing gratitude",
			Hint:             "You can start with the simplest thing",
			Category:         domain.CategoryEveryday,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               5,
			Text:             "Which song matches your mood today?",
			Goal:             "A playful way to share emotions",
			Hint:             "You could play it and listen together",
			Category:         domain.CategoryEveryday,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               6,
			Text:             "How can I support you right now?",
			Goal:             "Learning to ask about needs",
			Hint:             "Sometimes it's words, sometimes a hug, sometimes silence",
			Category:         domain.CategoryFeelingsSupport,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               7,
			Text:             "When did you last feel that I truly understood you?",
			Goal:             "Finding moments of genuine contact",
			Hint:             "Describe what exactly created that feeling",
			Category:         domain.CategoryFeelingsSupport,
			Target:           domain.TargetAny,
			Depth:            domain.DepthMedium,
			Stage:            domain.StageMiddle,
			IsCrisisSuitable: true,
			CrisisAllowed:    lowMedium(),
		},
		{
			ID:               8,
			Text:             "What helps you calm down when you're worried?",
			Goal:             "Learning how the other person self-regulates",
			Hint:             "Remember this — you'll be able to help in the future",
			Category:         domain.CategoryFeelingsSupport,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               9,
			Text:             "Which words from me matter most to you?",
			Goal:             "Finding your partner's love language",
			Hint:             "They might be words of support, gratitude, admiration",
			Category:         domain.CategoryFeelingsSupport,
			Target:           domain.TargetCouple,
			Depth:            domain.DepthMedium,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    lowMedium(),
		},
		{
			ID:               10,
			Text:             "Is there something that's hard for you to talk to me about?",
			Goal:             "Creating space for vulnerability",
			Hint:             "Listen without judgment, thank them for their honesty",
			TriggerWarning:   "The answer may be unexpected. Be ready to listen without getting defensive",
			Category:         domain.CategoryFeelingsSupport,
			Target:           domain.TargetAny,
			Depth:            domain.DepthDeep,
			Stage:            domain.StageMiddle,
			IsCrisisSuitable: false,
			CrisisAllowed:    lowOnly(),
		},
		{
			ID:               11,
			Text:             "Which of my words or actions give you a sense of safety?",
			Goal:             "Strengthening the feeling of security",
			Hint:             "This helps you understand how to build trust",
			Category:         domain.CategoryFeelingsSupport,
			Target:           domain.TargetAny,
			Depth:            domain.DepthMedium,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               12,
			Text:             "What is your warmest childhood memory?",
			Goal:             "Learning the other person's history",
			Hint:             "Ask for details — smells, sounds, sensations",
			Category:         domain.CategoryPastChildhood,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               13,
			Text:             "Which adult in your childhood made you feel that you mattered?",
			Goal:             "Understanding the sources of self-worth",
			Hint:             "What exactly did that person do?",
			Category:         domain.CategoryPastChildhood,
			Target:           domain.TargetAny,
			Depth:            domain.DepthMedium,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    lowMedium(),
		},
		{
			ID:               14,
			Text:             "What lesson from your childhood would you like to pass on?",
			Goal:             "Values and experience",
			Hint:             "How does that lesson shape you today?",
			Category:         domain.CategoryPastChildhood,
			Target:           domain.TargetAny,
			Depth:            domain.DepthMedium,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    lowMedium(),
		},
		{
			ID:               15,
			Text:             "Which memory of the two of us do you keep as something special?",
			Goal:             "Strengthening the shared story",
			Hint:             "Tell each other why that particular memory",
			Category:         domain.CategoryPastChildhood,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageMiddle,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               16,
			Text:             "What did you lack in childhood that you want to give yourself now?",
			Goal:             "Recognizing unmet needs",
			Hint:             "Be gentle — this can be a sensitive topic",
			TriggerWarning:   "This question may touch painful memories",
			Category:         domain.CategoryPastChildhood,
			Target:           domain.TargetAny,
			Depth:            domain.DepthDeep,
			Stage:            domain.StageLong,
			IsCrisisSuitable: false,
			CrisisAllowed:    lowOnly(),
		},
		{
			ID:               17,
			Text:             "What have you been dreaming about lately?",
			Goal:             "Learning the other person's aspirations",
			Hint:             "Don't evaluate, just be curious",
			Category:         domain.CategoryDreamsPlans,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               18,
			Text:             "What shared adventure would you like us to have together?",
			Goal:             "Planning a shared future",
			Hint:             "Feel free to fantasize without limits",
			Category:         domain.CategoryDreamsPlans,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               19,
			Text:             "If you could master any skill instantly, what would it be?",
			Goal:             "Uncovering hidden interests",
			Hint:             "Why that one in particular?",
			Category:         domain.CategoryDreamsPlans,
			Target:           domain.TargetAny,
			Depth:            domain.DepthEasy,
			Stage:            domain.StageAny,
			IsCrisisSuitable: true,
			CrisisAllowed:    allLevels(),
		},
		{
			ID:               20,
			Text:             "How do you picture our life five years from now?",
			Goal:             "Aligning the vision of the future",
			Hint:             "Talk about wishes, not fears",
			Category:         domain.CategoryDreamsPlans,
			Target:           domain.TargetAny,
			Depth:            domain.DepthMedium,
			Stage:            domain.StageMiddle,
			IsCrisisSuitable: true,
			CrisisAllowed:    lowMedium(),
		},
	}
}

// builtinTips is the fallback tip list for the results screen.
func builtinTips() []string {
	return []string{
		"Try holding sessions like this regularly — once a week, for example. It strengthens the bond and builds a tradition of open conversation.",
		"After the talk you can hug, or just sit together in silence. Sometimes silence is part of closeness too.",
		"If a question touched on something important, you can come back to it later in a calm moment.",
		"Write down your favorite questions — you can return to them and watch how the answers change over time.",
		"You don't have to discuss everything in one sitting. Small but regular conversations are what closeness is made of.",
	}
}
