package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("jobId", "123")

		assert.Equal(t, "jobId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("jobId", "123", cause)

		assert.Equal(t, "jobId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: jobId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("classifiable with errors.Is", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vehicleId", "v1")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("pickup")

		assert.Equal(t, "pickup", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: pickup", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("pickup", cause)

		assert.Equal(t, "pickup", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: pickup (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("pickup\nlocation")
		assert.Contains(t, err.Error(), "pickup location")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestResourceUnavailableError(t *testing.T) {
	t.Run("NewResourceUnavailableError", func(t *testing.T) {
		err := errs.NewResourceUnavailableError("vehicle", "Truck")

		assert.Equal(t, "vehicle", err.Resource)
		assert.Equal(t, "Truck", err.Criterion)
		require.NoError(t, err.Cause)
		assert.Equal(t, "resource unavailable: no vehicle matches criterion Truck", err.Error())
		assert.Equal(t, errs.ErrResourceUnavailable, err.Unwrap())
	})

	t.Run("NewResourceUnavailableErrorWithCause", func(t *testing.T) {
		cause := errors.New("registry returned no content")
		err := errs.NewResourceUnavailableErrorWithCause("driver", "Heavy", cause)

		assert.Equal(t, "driver", err.Resource)
		assert.Equal(t, "Heavy", err.Criterion)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"resource unavailable: resource is: driver, criterion is: Heavy (cause: registry returned no content)",
			err.Error())
		assert.Equal(t, errs.ErrResourceUnavailable, err.Unwrap())
	})
}

func TestUpstreamUnavailableError(t *testing.T) {
	t.Run("NewUpstreamUnavailableError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewUpstreamUnavailableError("fleet-service", cause)

		assert.Equal(t, "fleet-service", err.Service)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "upstream unavailable: fleet-service (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrUpstreamUnavailable, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewUpstreamUnavailableError("driver-service", nil)
		assert.Equal(t, "upstream unavailable: driver-service", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("job is cancelled")

		assert.Equal(t, "job is cancelled", err.Subject)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: job is cancelled", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal status")
		err := errs.NewConflictErrorWithCause("job", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: job (cause: terminal status)", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}
