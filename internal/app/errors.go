package service

import "errors"

// Sentinel kinds for solve rejections. Validation failures are returned
// before any search is attempted; callers match them with errors.Is.
var (
	// ErrInvalidDesiredOrder rejects desired orders that do not name
	// three distinct teams with known scores.
	ErrInvalidDesiredOrder = errors.New("desired order must name three distinct teams with scores")

	// ErrNoRemainingEvents rejects scenarios with nothing left to play.
	ErrNoRemainingEvents = errors.New("no remaining events")

	// ErrCapacityExceeded rejects scenarios above the exhaustive-search
	// ceiling; guarantees are not attempted beyond it.
	ErrCapacityExceeded = errors.New("event count exceeds solver capacity")

	// ErrTierData reports malformed tier data surfaced while resolving
	// events; converted to a failure at the service boundary.
	ErrTierData = errors.New("invalid tier data")

	// ErrInternal wraps unexpected failures (including recovered panics)
	// so a solve can never take the caller's process down.
	ErrInternal = errors.New("internal solver error")
)
