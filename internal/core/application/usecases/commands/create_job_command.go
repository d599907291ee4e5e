package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to dispatch a new delivery job.
// It carries the route (pickup, ordered stops, destination), optionally
// explicit vehicle/driver ids, and the assignment criteria used when an id is
// not supplied. The criteria are explicit inputs rather than hard-coded
// defaults; the HTTP boundary fills them from configuration when the caller
// omits them.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	pickup       string
	destination  string
	stops        []string
	vehicleID    string
	driverID     string
	vehicleType  string
	licenseClass string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to dispatch a new job.
// Pickup, destination, and both assignment criteria are required; vehicleID
// and driverID are optional and, when empty, trigger an availability lookup
// against the corresponding registry.
func NewCreateJobCommand(
	pickup, destination string,
	stops []string,
	vehicleID, driverID string,
	vehicleType, licenseClass string,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickup(pickup),
		cmd.setDestination(destination),
		cmd.setStops(stops),
		cmd.setCriteria(vehicleType, licenseClass),
	); err != nil {
		return CreateJobCommand{}, err
	}

	cmd.vehicleID = vehicleID
	cmd.driverID = driverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// Pickup returns the pickup location.
func (c CreateJobCommand) Pickup() string {
	return c.pickup
}

// Destination returns the delivery destination.
func (c CreateJobCommand) Destination() string {
	return c.destination
}

// Stops returns the ordered stop names.
func (c CreateJobCommand) Stops() []string {
	return append([]string(nil), c.stops...)
}

// VehicleID returns the explicitly requested vehicle id; empty means
// auto-assign.
func (c CreateJobCommand) VehicleID() string {
	return c.vehicleID
}

// DriverID returns the explicitly requested driver id; empty means
// auto-assign.
func (c CreateJobCommand) DriverID() string {
	return c.driverID
}

// VehicleType returns the availability-lookup criterion for vehicles.
func (c CreateJobCommand) VehicleType() string {
	return c.vehicleType
}

// LicenseClass returns the availability-lookup criterion for drivers.
func (c CreateJobCommand) LicenseClass() string {
	return c.licenseClass
}

func (c *CreateJobCommand) setPickup(pickup string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickup")
	}
	c.pickup = pickup
	return nil
}

func (c *CreateJobCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

func (c *CreateJobCommand) setStops(stops []string) error {
	for _, name := range stops {
		if name == "" {
			return errs.NewValueIsRequiredError("stop name")
		}
	}
	c.stops = append([]string(nil), stops...)
	return nil
}

func (c *CreateJobCommand) setCriteria(vehicleType, licenseClass string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	if licenseClass == "" {
		return errs.NewValueIsRequiredError("licenseClass")
	}
	c.vehicleType = vehicleType
	c.licenseClass = licenseClass
	return nil
}
