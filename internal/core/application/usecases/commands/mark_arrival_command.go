package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkArrivalCommandIsNotConstructed = errors.New(
	"MarkArrivalCommand must be created via NewMarkArrivalCommand constructor",
)

// MarkArrivalCommand represents the arrival event for a job: the vehicle has
// reached the destination and the job should be completed.
type MarkArrivalCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkArrivalCommand creates a command to complete the given job.
func NewMarkArrivalCommand(jobID kernel.UUID) (MarkArrivalCommand, error) {
	if err := jobID.Validate(); err != nil {
		return MarkArrivalCommand{}, err
	}

	return MarkArrivalCommand{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrivalCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivalCommandIsNotConstructed)
}

// JobID returns the id of the job that arrived.
func (c MarkArrivalCommand) JobID() kernel.UUID {
	return c.jobID
}
