package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/vehicle"
)

// VehicleRegistry is the contract the dispatch core needs from the remote
// fleet service. Lookup failures surface as errs.ErrObjectNotFound or
// errs.ErrResourceUnavailable; transport failures as errs.ErrUpstreamUnavailable.
type VehicleRegistry interface {
	// Get retrieves a vehicle by its registry id.
	Get(ctx context.Context, id string) (vehicle.Vehicle, error)

	// GetAvailableByType returns a single available vehicle of the given type.
	// The tie-break among equally available vehicles is arbitrary and
	// registry-defined; callers must not assume it is stable.
	GetAvailableByType(ctx context.Context, vehicleType string) (vehicle.Vehicle, error)

	// SetStatus requests a status change. Fire-and-forget beyond
	// success/failure: the returned state is not consumed.
	SetStatus(ctx context.Context, id, status string) error
}

// DriverRegistry is the contract the dispatch core needs from the remote
// driver service. Error semantics match VehicleRegistry.
type DriverRegistry interface {
	// Get retrieves a driver by its registry id.
	Get(ctx context.Context, id string) (driver.Driver, error)

	// GetAvailableByLicenseClass returns a single available driver holding the
	// given license class. Tie-break is arbitrary and registry-defined.
	GetAvailableByLicenseClass(ctx context.Context, licenseClass string) (driver.Driver, error)

	// SetAvailability requests an availability flag change.
	SetAvailability(ctx context.Context, id string, available bool) error
}
