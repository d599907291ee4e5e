package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRaiseEmergencyCommandIsNotConstructed = errors.New(
	"RaiseEmergencyCommand must be created via NewRaiseEmergencyCommand constructor",
)

// RaiseEmergencyCommand represents an emergency raised against a job
// (breakdown, delay, incident).
type RaiseEmergencyCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRaiseEmergencyCommand creates a command to flag the given job.
func NewRaiseEmergencyCommand(jobID kernel.UUID) (RaiseEmergencyCommand, error) {
	if err := jobID.Validate(); err != nil {
		return RaiseEmergencyCommand{}, err
	}

	return RaiseEmergencyCommand{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseEmergencyCommand) Validate() error {
	return c.guard.Validate(ErrRaiseEmergencyCommandIsNotConstructed)
}

// JobID returns the id of the affected job.
func (c RaiseEmergencyCommand) JobID() kernel.UUID {
	return c.jobID
}
