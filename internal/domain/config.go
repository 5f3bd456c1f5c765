package domain

import "fmt"

// SessionConfig holds the parameters chosen in the setup wizard.
// It is mutable during setup and frozen once a session starts.
type SessionConfig struct {
	Target      Target
	Stage       Stage
	Depth       DepthMode
	Crisis      bool
	CrisisLevel CrisisLevel
	Count       int
	Categories  []Category
}

// DefaultSessionConfig returns the configuration the setup wizard
// starts from: five questions, no category restriction, low crisis
// level until the crisis toggle raises it.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		CrisisLevel: CrisisLow,
		Count:       5,
		Categories:  []Category{CategoryRandom},
	}
}

// Validate checks that the configuration is complete enough to start
// a session.
func (c SessionConfig) Validate() error {
	if c.Target == "" || c.Stage == "" || c.Depth == "" {
		return ErrIncompleteConfig
	}
	if c.Target == TargetAny {
		return fmt.Errorf("%w: target must be a concrete audience", ErrIncompleteConfig)
	}
	if c.Stage == StageAny {
		return fmt.Errorf("%w: stage must be a concrete value", ErrIncompleteConfig)
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: question count must be positive", ErrIncompleteConfig)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: at least one category required", ErrIncompleteConfig)
	}
	return nil
}

// WantsCategory reports whether the configuration admits questions of
// the given category. The "random" sentinel admits everything.
func (c SessionConfig) WantsCategory(cat Category) bool {
	for _, sel := range c.Categories {
		if sel == CategoryRandom || sel == cat {
			return true
		}
	}
	return false
}
