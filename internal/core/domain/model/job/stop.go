package job

import (
	"time"

	"dispatch/internal/pkg/errs"
)

// Stop is an intermediate waypoint on a job's route. A stop carries its name
// and, once the vehicle has passed it, the time it was reached.
type Stop struct {
	name      string
	reachedAt *time.Time
}

// NewStop creates a stop that has not been reached yet.
// The name must not be empty.
func NewStop(name string) (Stop, error) {
	if name == "" {
		return Stop{}, errs.NewValueIsRequiredError("stop name")
	}
	return Stop{name: name}, nil
}

// RestoreStop reconstructs a stop from persistence, including its
// reached-timestamp if any.
func RestoreStop(name string, reachedAt *time.Time) (Stop, error) {
	stop, err := NewStop(name)
	if err != nil {
		return Stop{}, err
	}
	stop.reachedAt = reachedAt
	return stop, nil
}

// Name returns the stop's name. Stop names are matched case-sensitively.
func (s Stop) Name() string {
	return s.name
}

// ReachedAt returns the time the stop was reached, or nil if it has not been.
func (s Stop) ReachedAt() *time.Time {
	return s.reachedAt
}
