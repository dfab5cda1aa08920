package domain

import "errors"

var (
	// ErrNoScenarios is returned when a plan holds no scenarios.
	ErrNoScenarios = errors.New("no scenarios provided")
	// ErrScenarioNotFound is returned when a named scenario is not in the plan.
	ErrScenarioNotFound = errors.New("scenario not found")
)
