package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand represents an administrative patch of a job. Nil fields
// are left untouched; non-nil fields overwrite the stored values, with the
// status applied outside the guarded transitions. No registry side effects
// are issued, so a forced status can desynchronize the job from registry
// state. Use sparingly.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	pickup      *string
	destination *string
	status      *job.Status

	guard guard.ConstructorGuard
}

// NewUpdateJobCommand creates an administrative patch command.
// Every provided field is validated up front.
func NewUpdateJobCommand(
	jobID kernel.UUID,
	pickup, destination *string,
	status *job.Status,
) (UpdateJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return UpdateJobCommand{}, err
	}
	if pickup != nil && *pickup == "" {
		return UpdateJobCommand{}, errs.NewValueIsRequiredError("pickup")
	}
	if destination != nil && *destination == "" {
		return UpdateJobCommand{}, errs.NewValueIsRequiredError("destination")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateJobCommand{}, err
		}
	}

	return UpdateJobCommand{
		jobID:       jobID,
		pickup:      pickup,
		destination: destination,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

// JobID returns the id of the job to patch.
func (c UpdateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Pickup returns the new pickup location, or nil to keep the current one.
func (c UpdateJobCommand) Pickup() *string {
	return c.pickup
}

// Destination returns the new destination, or nil to keep the current one.
func (c UpdateJobCommand) Destination() *string {
	return c.destination
}

// Status returns the status to force, or nil to keep the current one.
func (c UpdateJobCommand) Status() *job.Status {
	return c.status
}
