// Package regsync models pending registry synchronizations. When a job
// transition has been persisted but the follow-up call to a registry failed,
// the intended registry state is recorded as a Task and replayed later by the
// reconciliation job. The job record stays the source of truth; tasks only
// close the drift between it and the registries.
package regsync

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrTaskIsNotConstructed is returned when a Task was not created through one
// of the package constructors.
var ErrTaskIsNotConstructed = errors.New("Task must be created via a regsync constructor")

// Resource identifies which registry a task targets.
type Resource string

const (
	ResourceVehicle Resource = "vehicle"
	ResourceDriver  Resource = "driver"
)

// Validate checks the resource kind.
func (r Resource) Validate() error {
	if r != ResourceVehicle && r != ResourceDriver {
		return errs.NewValueIsInvalidError("resource")
	}
	return nil
}

// Task is one pending registry synchronization: the status or availability a
// resource should have according to the persisted job state. Replaying a task
// is idempotent because registry status sets are.
type Task struct {
	id              kernel.UUID
	resource        Resource
	resourceID      string
	vehicleStatus   string
	driverAvailable bool
	attempts        int
	createdAt       time.Time

	isConstructed bool
}

// NewVehicleStatusTask records that the vehicle should be moved to the given
// registry status.
func NewVehicleStatusTask(vehicleID, status string) (*Task, error) {
	if vehicleID == "" {
		return nil, errs.NewValueIsRequiredError("vehicleID")
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	return &Task{
		id:            kernel.NewUUID(),
		resource:      ResourceVehicle,
		resourceID:    vehicleID,
		vehicleStatus: status,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// NewDriverAvailabilityTask records that the driver's availability flag should
// be set to the given value.
func NewDriverAvailabilityTask(driverID string, available bool) (*Task, error) {
	if driverID == "" {
		return nil, errs.NewValueIsRequiredError("driverID")
	}

	return &Task{
		id:              kernel.NewUUID(),
		resource:        ResourceDriver,
		resourceID:      driverID,
		driverAvailable: available,
		createdAt:       time.Now().UTC(),
		isConstructed:   true,
	}, nil
}

// RestoreTask reconstructs a task from persistence.
func RestoreTask(
	id kernel.UUID,
	resource Resource,
	resourceID string,
	vehicleStatus string,
	driverAvailable bool,
	attempts int,
	createdAt time.Time,
) (*Task, error) {
	if err := errors.Join(id.Validate(), resource.Validate()); err != nil {
		return nil, err
	}
	if resourceID == "" {
		return nil, errs.NewValueIsRequiredError("resourceID")
	}

	return &Task{
		id:              id,
		resource:        resource,
		resourceID:      resourceID,
		vehicleStatus:   vehicleStatus,
		driverAvailable: driverAvailable,
		attempts:        attempts,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Task was properly constructed.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// Resource returns the registry the task targets.
func (t *Task) Resource() Resource {
	return t.resource
}

// ResourceID returns the registry-assigned id of the resource to sync.
func (t *Task) ResourceID() string {
	return t.resourceID
}

// VehicleStatus returns the desired vehicle status.
// Meaningful only when Resource is ResourceVehicle.
func (t *Task) VehicleStatus() string {
	return t.vehicleStatus
}

// DriverAvailable returns the desired driver availability.
// Meaningful only when Resource is ResourceDriver.
func (t *Task) DriverAvailable() bool {
	return t.driverAvailable
}

// Attempts returns how many replays have failed so far.
func (t *Task) Attempts() int {
	return t.attempts
}

// CreatedAt returns when the drift was first recorded.
func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

// RecordAttempt increments the failed-replay counter.
func (t *Task) RecordAttempt() {
	t.attempts++
}
