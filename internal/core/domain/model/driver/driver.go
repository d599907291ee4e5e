// Package driver holds the dispatch system's read model of a driver.
// Driver state is owned by the remote driver registry; dispatch reads it and
// requests availability changes, nothing more.
package driver

// Driver is the registry's view of a driver, as consumed by dispatch.
// Available mirrors the registry's availability flag; the driver's own status
// string stays registry-side.
type Driver struct {
	ID        string
	Name      string
	Available bool
}
