package provider

import "errors"

// Sentinel kinds for data-provider errors. The orchestrator folds all of
// them into the ApiError draw kind; they stay distinguishable here for
// logging and tests.
var (
	ErrRequest     = errors.New("provider request failed")
	ErrStatus      = errors.New("provider returned non-success status")
	ErrBadSnapshot = errors.New("provider snapshot missing required fields")
)
