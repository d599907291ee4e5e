package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/joblock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewDeleteJobCommand(jobID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Delete", ctx, jobID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteJobCommandHandler(factory, joblock.NewKeyedMutex())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteJobCommandHandler_Handle_JobNotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewDeleteJobCommand(jobID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Delete", ctx, jobID).
			Return(errs.NewObjectNotFoundError("jobId", jobID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteJobCommandHandler(factory, joblock.NewKeyedMutex())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}