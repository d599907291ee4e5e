package job

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a dispatch job.
//
// Guarded transitions:
//
//	Pending ──> InProgress ──> {Completed, Cancelled}
//	any state ──> NeedsAttention
//
// Completed and Cancelled are terminal for the automated lifecycle.
// Administrative override (Job.ForceStatus) may still force any status;
// that escape hatch deliberately bypasses these transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a job before resources are assigned.
	// It is never visible externally: creation persists the job only after
	// assignment moved it to InProgress.
	Pending

	// InProgress indicates the job is underway with a vehicle and driver assigned.
	InProgress

	// Completed indicates the job finished delivery. Terminal.
	Completed

	// Cancelled indicates the job was called off. Terminal.
	Cancelled

	// NeedsAttention flags a job whose vehicle or driver raised an emergency.
	NeedsAttention
)

// getStatusStrings returns the wire names of all statuses, matching the
// status vocabulary of the upstream registries.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		InProgress:     "IN_PROGRESS",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
		NeedsAttention: "NEEDS_ATTENTION",
	}
}

// getValidStatusStrings returns only valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		InProgress:     "IN_PROGRESS",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
		NeedsAttention: "NEEDS_ATTENTION",
	}
}

// StatusFromString parses a wire-format status name.
// Returns an error for names outside the valid vocabulary.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status value is one of the valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status ends the automated lifecycle.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Assign transitions the status to InProgress.
//
// Valid only from Pending: assignment happens exactly once, during creation,
// before the job is ever persisted.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid from Pending, InProgress, and NeedsAttention. Completing a Cancelled
// job is a conflict: cancellation is terminal. Completing an already Completed
// job is handled by the aggregate as an idempotent no-op and never reaches
// this method.
func (s Status) Complete() (Status, error) {
	if s == Cancelled {
		return 0, errs.NewConflictErrorWithCause(
			"job is cancelled",
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Completed, nil
}

// FlagNeedsAttention transitions the status to NeedsAttention.
//
// Allowed from every valid status, terminal ones included: an emergency on a
// job outranks its recorded lifecycle position.
func (s Status) FlagNeedsAttention() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return NeedsAttention, nil
}
