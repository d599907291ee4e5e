// Package kernel provides core domain primitives for the dispatch system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package currently contains UUID, a value object for unique identifiers
// with validation and comparison capabilities. Vehicle and driver identifiers
// are deliberately not UUIDs: those ids are assigned by the remote registries
// and treated as opaque strings.
//
// Primitives here are immutable and thread-safe, making them suitable for
// concurrent use.
package kernel
