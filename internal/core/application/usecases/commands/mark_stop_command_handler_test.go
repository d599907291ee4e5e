package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/joblock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreJobWithStops(t *testing.T, id kernel.UUID, stopNames ...string) *job.Job {
	t.Helper()
	stops := make([]job.Stop, 0, len(stopNames))
	for _, name := range stopNames {
		stop, err := job.NewStop(name)
		require.NoError(t, err)
		stops = append(stops, stop)
	}
	vehicleID, driverID := "v1", "d1"
	restored, err := job.RestoreJob(
		id, "Warehouse A", "Store B", stops,
		job.InProgress, &vehicleID, &driverID, time.Now().UTC())
	require.NoError(t, err)
	return restored
}

func TestMarkStopCommandHandler_Handle_StampsMatchingStop(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewMarkStopCommand(jobID, "Checkpoint 2")
	require.NoError(t, err)

	stopped := restoreJobWithStops(t, jobID, "Checkpoint 1", "Checkpoint 2")

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, jobID).Return(stopped, nil).Once(),
		jobRepo.On("Update", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkStopCommandHandler(factory, joblock.NewKeyedMutex(), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	stops := stopped.Stops()
	assert.Nil(t, stops[0].ReachedAt())
	require.NotNil(t, stops[1].ReachedAt())
	assert.WithinDuration(t, time.Now().UTC(), *stops[1].ReachedAt(), time.Minute)

	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkStopCommandHandler_Handle_UnmatchedStopStillPersists(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewMarkStopCommand(jobID, "checkpoint 1") // wrong case
	require.NoError(t, err)

	stopped := restoreJobWithStops(t, jobID, "Checkpoint 1")

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, jobID).Return(stopped, nil).Once(),
		jobRepo.On("Update", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkStopCommandHandler(factory, joblock.NewKeyedMutex(), discardLogger())
	err = handler.Handle(ctx, cmd)

	// Unknown stop names are tolerated: the job is written back untouched.
	require.NoError(t, err)
	assert.Nil(t, stopped.Stops()[0].ReachedAt())
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkStopCommandHandler_Handle_JobNotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewMarkStopCommand(jobID, "Checkpoint 1")
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, jobID).
			Return(nil, errs.NewObjectNotFoundError("jobId", jobID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkStopCommandHandler(factory, joblock.NewKeyedMutex(), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkStopCommandHandler_Handle_EmptyStopNameRejected(t *testing.T) {
	jobID := kernel.NewUUID()
	_, err := commands.NewMarkStopCommand(jobID, "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
