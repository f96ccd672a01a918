package savings

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrNotInitialized is returned when the savings configuration does
	// not exist, meaning the extension was never initialized on this
	// chain.
	ErrNotInitialized = errors.Register(1550, "not initialized")

	// ErrStillLocked is returned when withdrawing from a goal before the
	// lock period expired.
	ErrStillLocked = errors.Register(1551, "lock period not expired")

	// ErrInactiveGoal is returned when modifying a goal that reached a
	// terminal state.
	ErrInactiveGoal = errors.Register(1552, "goal is not active")
)
