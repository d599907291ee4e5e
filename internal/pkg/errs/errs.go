package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel for values that fail validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectNotFound is the sentinel for lookups of unknown entities.
	ErrObjectNotFound = errors.New("object not found")

	// ErrResourceUnavailable is the sentinel for failed auto-assignment:
	// no vehicle or driver matched the requested criterion.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrUpstreamUnavailable is the sentinel for transport-level failures
	// of calls into the vehicle or driver registry.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrConflict is the sentinel for operations rejected because of the
	// entity's current state, e.g. completing a cancelled job.
	ErrConflict = errors.New("conflict")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// wrapping the causing error.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// wrapping the causing error.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError reports a lookup of an entity id unknown to its owning
// store or registry.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for an unknown entity id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for an unknown entity id
// wrapping the causing error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ResourceUnavailableError reports that no vehicle or driver matching the
// requested criterion could be resolved during auto-assignment.
type ResourceUnavailableError struct {
	Resource  string
	Criterion string
	Cause     error
}

// NewResourceUnavailableError creates an error for a failed availability lookup.
func NewResourceUnavailableError(resource, criterion string) *ResourceUnavailableError {
	return &ResourceUnavailableError{Resource: resource, Criterion: criterion}
}

// NewResourceUnavailableErrorWithCause creates an error for a failed availability
// lookup wrapping the causing error.
func NewResourceUnavailableErrorWithCause(resource, criterion string, cause error) *ResourceUnavailableError {
	return &ResourceUnavailableError{Resource: resource, Criterion: criterion, Cause: cause}
}

func (e *ResourceUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: resource is: %s, criterion is: %s (cause: %s)",
			ErrResourceUnavailable, e.Resource, e.Criterion, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: no %s matches criterion %s", ErrResourceUnavailable, e.Resource, e.Criterion))
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}

// UpstreamUnavailableError reports a transport-level failure of a call into
// one of the remote registries.
type UpstreamUnavailableError struct {
	Service string
	Cause   error
}

// NewUpstreamUnavailableError creates an error for a failed registry call.
func NewUpstreamUnavailableError(service string, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Service: service, Cause: cause}
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUpstreamUnavailable, e.Service, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUpstreamUnavailable, e.Service))
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return ErrUpstreamUnavailable
}

// ConflictError reports an operation rejected by the entity's current state.
type ConflictError struct {
	Subject string
	Cause   error
}

// NewConflictError creates an error for a state-conflicting operation.
func NewConflictError(subject string) *ConflictError {
	return &ConflictError{Subject: subject}
}

// NewConflictErrorWithCause creates an error for a state-conflicting operation
// wrapping the causing error.
func NewConflictErrorWithCause(subject string, cause error) *ConflictError {
	return &ConflictError{Subject: subject, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Subject, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.Subject))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
