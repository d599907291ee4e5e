package job

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through NewJob or RestoreJob. This ensures all jobs are properly validated.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

// Job is the aggregate root for a single transport task, from creation to
// completion or cancellation.
//
// Job maintains these invariants:
//   - Must have a valid unique identifier
//   - Pickup and destination are required
//   - Guarded status transitions follow the Status state machine
//   - Assigned vehicle and driver ids, once set, are opaque registry-owned strings
//   - Can only be created through NewJob or RestoreJob
//
// The aggregate never caches remote vehicle or driver state; it records only
// which resources were assigned. Keeping the registries consistent with those
// assignments is the orchestration layer's job, not this type's.
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// pickup is the pickup location, free text
	pickup string

	// stops is the ordered sequence of intermediate waypoints
	stops []Stop

	// destination is the delivery destination, free text
	destination string

	// status is the current state in the job lifecycle
	status Status

	// vehicleID is the assigned vehicle's registry id (nil until resolved)
	vehicleID *string

	// driverID is the assigned driver's registry id (nil until resolved)
	driverID *string

	// createdAt is the job's creation timestamp
	createdAt time.Time

	// isConstructed ensures the job was created via a constructor
	isConstructed bool
}

// NewJob creates a job in Pending status with no resources assigned.
// Pickup and destination are required; stops may be empty.
//
// The Pending status is internal to creation: the dispatch flow assigns
// resources via Assign before the job is first persisted, so external
// observers only ever see InProgress or later.
func NewJob(id kernel.UUID, pickup, destination string, stops []Stop) (*Job, error) {
	j := &Job{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setPickup(pickup),
		j.setDestination(destination),
	); err != nil {
		return nil, err
	}

	j.stops = append([]Stop(nil), stops...)
	return j, nil
}

// RestoreJob reconstructs a job from persistence without applying transition
// guards, validating only field-level invariants.
func RestoreJob(
	id kernel.UUID,
	pickup, destination string,
	stops []Stop,
	status Status,
	vehicleID, driverID *string,
	createdAt time.Time,
) (*Job, error) {
	j := &Job{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setPickup(pickup),
		j.setDestination(destination),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	j.stops = append([]Stop(nil), stops...)
	j.status = status
	j.vehicleID = vehicleID
	j.driverID = driverID
	return j, nil
}

// Validate ensures the Job instance was properly constructed.
// Returns ErrJobIsNotConstructed otherwise.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Pickup returns the pickup location.
func (j *Job) Pickup() string {
	return j.pickup
}

// Destination returns the delivery destination.
func (j *Job) Destination() string {
	return j.destination
}

// Stops returns a copy of the job's ordered stop list.
func (j *Job) Stops() []Stop {
	return append([]Stop(nil), j.stops...)
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// VehicleID returns the assigned vehicle's registry id, or nil if unassigned.
func (j *Job) VehicleID() *string {
	return j.vehicleID
}

// DriverID returns the assigned driver's registry id, or nil if unassigned.
func (j *Job) DriverID() *string {
	return j.driverID
}

// CreatedAt returns the job's creation timestamp.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// Assign records the resolved vehicle and driver and moves the job to
// InProgress. Valid only on a Pending job: assignment happens exactly once,
// during creation, before the first persist.
//
// The ids are trusted as-is; whether they came from an explicit request or an
// availability lookup is the orchestration layer's concern.
func (j *Job) Assign(vehicleID, driverID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleID")
	}
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverID")
	}

	newStatus, err := j.status.Assign()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.vehicleID = &vehicleID
	j.driverID = &driverID
	return nil
}

// Complete marks the job as delivered.
//
// Returns (false, nil) when the job is already Completed: arrival marking is
// idempotent and the caller must not re-issue resource release calls.
// Completing a Cancelled job is a conflict.
func (j *Job) Complete() (bool, error) {
	if j.status == Completed {
		return false, nil
	}

	newStatus, err := j.status.Complete()
	if err != nil {
		return false, err
	}

	j.status = newStatus
	return true, nil
}

// FlagNeedsAttention marks the job as needing attention after an emergency.
// Allowed from any status.
func (j *Job) FlagNeedsAttention() error {
	newStatus, err := j.status.FlagNeedsAttention()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// MarkStop stamps the first stop whose name equals stopName (case-sensitive)
// with the given time and reports whether a stop matched. An unmatched name
// leaves the stop list untouched; surfacing that condition is left to the
// caller. A matched stop's timestamp is overwritten on repeat calls, so
// distinct physical arrivals at the same named stop are not distinguishable.
func (j *Job) MarkStop(stopName string, at time.Time) bool {
	for i := range j.stops {
		if j.stops[i].name == stopName {
			reached := at
			j.stops[i].reachedAt = &reached
			return true
		}
	}
	return false
}

// ForceStatus overwrites the job's status, bypassing the guarded transitions.
// Administrative escape hatch: it can desynchronize the job from registry
// state, since no compensating calls are issued for forced transitions.
func (j *Job) ForceStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	j.status = status
	return nil
}

// UpdatePickup overwrites the pickup location. Administrative use.
func (j *Job) UpdatePickup(pickup string) error {
	return j.setPickup(pickup)
}

// UpdateDestination overwrites the destination. Administrative use.
func (j *Job) UpdateDestination(destination string) error {
	return j.setDestination(destination)
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setPickup(pickup string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickup")
	}
	j.pickup = pickup
	return nil
}

func (j *Job) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	j.destination = destination
	return nil
}
