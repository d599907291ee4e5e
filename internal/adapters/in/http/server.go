package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler      commands.CreateJobCommandHandler
	updateJobHandler      commands.UpdateJobCommandHandler
	deleteJobHandler      commands.DeleteJobCommandHandler
	markArrivalHandler    commands.MarkArrivalCommandHandler
	markStopHandler       commands.MarkStopCommandHandler
	raiseEmergencyHandler commands.RaiseEmergencyCommandHandler

	// Query handlers
	getAllJobsHandler queries.GetAllJobsQueryHandler
	getJobHandler     queries.GetJobQueryHandler

	// Assignment criteria applied when a request omits them
	defaultVehicleType  string
	defaultLicenseClass string
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The default vehicle type and license class are used for
// availability lookups when a job request does not name them.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	updateJobHandler commands.UpdateJobCommandHandler,
	deleteJobHandler commands.DeleteJobCommandHandler,
	markArrivalHandler commands.MarkArrivalCommandHandler,
	markStopHandler commands.MarkStopCommandHandler,
	raiseEmergencyHandler commands.RaiseEmergencyCommandHandler,
	getAllJobsHandler queries.GetAllJobsQueryHandler,
	getJobHandler queries.GetJobQueryHandler,
	defaultVehicleType string,
	defaultLicenseClass string,
) *Server {
	return &Server{
		createJobHandler:      createJobHandler,
		updateJobHandler:      updateJobHandler,
		deleteJobHandler:      deleteJobHandler,
		markArrivalHandler:    markArrivalHandler,
		markStopHandler:       markStopHandler,
		raiseEmergencyHandler: raiseEmergencyHandler,
		getAllJobsHandler:     getAllJobsHandler,
		getJobHandler:         getJobHandler,
		defaultVehicleType:    defaultVehicleType,
		defaultLicenseClass:   defaultLicenseClass,
	}
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "healthy")
}

// ListJobs handles GET /jobs - retrieves all jobs, oldest first.
func (s *Server) ListJobs(ctx echo.Context) error {
	query := queries.NewGetAllJobsQuery()

	jobs, err := s.getAllJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Job, len(jobs))
	for i, j := range jobs {
		response[i] = jobFromReadModel(j)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateJob handles POST /jobs - creates a job and assigns a vehicle and a
// driver to it.
func (s *Server) CreateJob(ctx echo.Context) error {
	var newJob servers.NewJob
	if err := ctx.Bind(&newJob); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	vehicleType := s.defaultVehicleType
	if newJob.VehicleType != nil && *newJob.VehicleType != "" {
		vehicleType = *newJob.VehicleType
	}
	licenseClass := s.defaultLicenseClass
	if newJob.LicenseClass != nil && *newJob.LicenseClass != "" {
		licenseClass = *newJob.LicenseClass
	}

	var stops []string
	if newJob.Stops != nil {
		stops = *newJob.Stops
	}

	cmd, err := commands.NewCreateJobCommand(
		newJob.Pickup,
		newJob.Destination,
		stops,
		stringValue(newJob.VehicleId),
		stringValue(newJob.DriverId),
		vehicleType,
		licenseClass,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job data: " + err.Error(),
		})
	}

	created, err := s.createJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, jobFromAggregate(created))
}

// GetJobById handles GET /jobs/{jobId} - retrieves a single job.
func (s *Server) GetJobById(ctx echo.Context, jobId openapi_types.UUID) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return invalidJobID(ctx, err)
	}

	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return invalidJobID(ctx, err)
	}

	found, err := s.getJobHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobFromReadModel(found))
}

// UpdateJob handles PUT /jobs/{jobId} - administratively patches a job.
// Absent fields keep their stored values.
func (s *Server) UpdateJob(ctx echo.Context, jobId openapi_types.UUID) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return invalidJobID(ctx, err)
	}

	var patch servers.JobPatch
	if err = ctx.Bind(&patch); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var status *job.Status
	if patch.Status != nil {
		parsed, parseErr := job.StatusFromString(string(*patch.Status))
		if parseErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid job data: " + parseErr.Error(),
			})
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateJobCommand(jobID, patch.Pickup, patch.Destination, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job data: " + err.Error(),
		})
	}

	updated, err := s.updateJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobFromAggregate(updated))
}

// DeleteJob handles DELETE /jobs/{jobId} - removes a job record. Assigned
// vehicles and drivers are not released.
func (s *Server) DeleteJob(ctx echo.Context, jobId openapi_types.UUID) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return invalidJobID(ctx, err)
	}

	cmd, err := commands.NewDeleteJobCommand(jobID)
	if err != nil {
		return invalidJobID(ctx, err)
	}

	if err = s.deleteJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkArrival handles PUT /jobs/{jobId}/mark-arrival - completes the job and
// releases its vehicle and driver.
func (s *Server) MarkArrival(ctx echo.Context, jobId openapi_types.UUID) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return invalidJobID(ctx, err)
	}

	cmd, err := commands.NewMarkArrivalCommand(jobID)
	if err != nil {
		return invalidJobID(ctx, err)
	}

	if err = s.markArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkStop handles PUT /jobs/{jobId}/mark-stop - stamps the named route stop
// with the current time.
func (s *Server) MarkStop(ctx echo.Context, jobId openapi_types.UUID, params servers.MarkStopParams) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return invalidJobID(ctx, err)
	}

	cmd, err := commands.NewMarkStopCommand(jobID, params.StopName)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stop data: " + err.Error(),
		})
	}

	if err = s.markStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RaiseEmergency handles POST /jobs/{jobId}/emergency - flags the job for
// attention and routes its vehicle to maintenance.
func (s *Server) RaiseEmergency(ctx echo.Context, jobId openapi_types.UUID) error {
	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return invalidJobID(ctx, err)
	}

	cmd, err := commands.NewRaiseEmergencyCommand(jobID)
	if err != nil {
		return invalidJobID(ctx, err)
	}

	if err = s.raiseEmergencyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps use case errors to HTTP statuses.
func errorResponse(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrResourceUnavailable), errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func invalidJobID(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid job id: " + err.Error(),
	})
}

func jobFromReadModel(j queries.JobResponse) servers.Job {
	stops := make([]servers.Stop, len(j.Stops))
	for i, stop := range j.Stops {
		stops[i] = servers.Stop{
			Name:      stop.Name,
			ReachedAt: stop.ReachedAt,
		}
	}

	return servers.Job{
		Id:          j.ID.Bytes(),
		Pickup:      j.Pickup,
		Destination: j.Destination,
		Status:      servers.JobStatus(j.Status),
		VehicleId:   j.VehicleID,
		DriverId:    j.DriverID,
		Stops:       stops,
		CreatedAt:   j.CreatedAt,
	}
}

func jobFromAggregate(j *job.Job) servers.Job {
	domainStops := j.Stops()
	stops := make([]servers.Stop, len(domainStops))
	for i, stop := range domainStops {
		stops[i] = servers.Stop{
			Name:      stop.Name(),
			ReachedAt: stop.ReachedAt(),
		}
	}

	return servers.Job{
		Id:          j.ID().Bytes(),
		Pickup:      j.Pickup(),
		Destination: j.Destination(),
		Status:      servers.JobStatus(j.Status().String()),
		VehicleId:   j.VehicleID(),
		DriverId:    j.DriverID(),
		Stops:       stops,
		CreatedAt:   j.CreatedAt(),
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
