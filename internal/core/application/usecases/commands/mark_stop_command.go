package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrMarkStopCommandIsNotConstructed = errors.New(
	"MarkStopCommand must be created via NewMarkStopCommand constructor",
)

// MarkStopCommand represents the event of a vehicle reaching a named
// intermediate stop on a job's route.
type MarkStopCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	stopName string

	guard guard.ConstructorGuard
}

// NewMarkStopCommand creates a command to stamp the given stop on the job.
func NewMarkStopCommand(jobID kernel.UUID, stopName string) (MarkStopCommand, error) {
	if err := jobID.Validate(); err != nil {
		return MarkStopCommand{}, err
	}
	if stopName == "" {
		return MarkStopCommand{}, errs.NewValueIsRequiredError("stopName")
	}

	return MarkStopCommand{
		jobID:    jobID,
		stopName: stopName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkStopCommand) Validate() error {
	return c.guard.Validate(ErrMarkStopCommandIsNotConstructed)
}

// JobID returns the id of the job whose stop was reached.
func (c MarkStopCommand) JobID() kernel.UUID {
	return c.jobID
}

// StopName returns the name of the reached stop, matched case-sensitively.
func (c MarkStopCommand) StopName() string {
	return c.stopName
}
