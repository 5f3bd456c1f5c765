package domain

import "errors"

var (
	// ErrIncompleteConfig is returned when a session is started before
	// target, stage, and depth have all been chosen.
	ErrIncompleteConfig = errors.New("session configuration incomplete")

	// ErrNoEligibleQuestions is returned when the filter yields nothing
	// for the configured session. The caller should suggest relaxing
	// the filters.
	ErrNoEligibleQuestions = errors.New("no eligible questions for this configuration")
)
