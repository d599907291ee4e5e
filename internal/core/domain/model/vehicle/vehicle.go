// Package vehicle holds the dispatch system's read model of a vehicle.
// Vehicle state is owned by the remote fleet registry; this process never
// persists it, only reads it and requests status mutations.
package vehicle

// Remote vehicle statuses the orchestrator reads or requests. The registry
// treats status as free text, so values outside this set may appear.
const (
	StatusAvailable   = "AVAILABLE"
	StatusInTransit   = "IN_TRANSIT"
	StatusMaintenance = "MAINTENANCE"
	StatusUnavailable = "UNAVAILABLE"
	StatusEmergency   = "EMERGENCY"
)

// Vehicle is the registry's view of a vehicle, as consumed by dispatch.
// The id is opaque and registry-assigned.
type Vehicle struct {
	ID               string
	Plate            string
	Type             string
	Status           string
	AssignedDriverID string
}
