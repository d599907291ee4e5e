package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteJobCommandIsNotConstructed = errors.New(
	"DeleteJobCommand must be created via NewDeleteJobCommand constructor",
)

// DeleteJobCommand represents an administrative removal of a job record.
type DeleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteJobCommand creates a command to delete the given job.
func NewDeleteJobCommand(jobID kernel.UUID) (DeleteJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return DeleteJobCommand{}, err
	}

	return DeleteJobCommand{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteJobCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobCommandIsNotConstructed)
}

// JobID returns the id of the job to delete.
func (c DeleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}
