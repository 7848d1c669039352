package common

import "errors"

var (
	// Auth errors. Terminal: the session is cleared when they surface
	// from the refresh path.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNoRefreshToken = errors.New("no refresh token available")

	// Transport failure. Propagated to the caller, never retried
	// automatically outside the single 401-refresh-replay path.
	ErrUnavailable = errors.New("server unavailable")

	// Resource lookup errors.
	ErrNotFound = errors.New("not found")

	// Client-side business rule violations, raised before any network call.
	ErrChallengeLimit = errors.New("challenge limit reached")
	ErrEmptySchedule  = errors.New("schedule has no entries")

	// Notification permission refused. Scheduling degrades to a no-op.
	ErrPermissionDenied = errors.New("notification permission denied")
)
