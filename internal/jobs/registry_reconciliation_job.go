package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/regsync"
	"dispatch/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"
)

// RegistryReconciliationJob drains the registry-sync outbox. Every run loads
// the pending tasks and replays each against its registry: vehicle tasks
// re-issue SetStatus, driver tasks re-issue SetAvailability. A replayed task
// is deleted; a failed one keeps its row with a bumped attempt counter and is
// retried on the next run. Replays are idempotent because registry status
// sets are.
type RegistryReconciliationJob struct {
	tasks    ports.RegistrySyncTaskRepository
	vehicles ports.VehicleRegistry
	drivers  ports.DriverRegistry
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRegistryReconciliationJob creates the outbox replay job.
func NewRegistryReconciliationJob(
	tasks ports.RegistrySyncTaskRepository,
	vehicles ports.VehicleRegistry,
	drivers ports.DriverRegistry,
	logger *slog.Logger,
) *RegistryReconciliationJob {
	return &RegistryReconciliationJob{
		tasks:    tasks,
		vehicles: vehicles,
		drivers:  drivers,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "registry_reconciliation_job"),
	}
}

// Start begins the reconciliation job, running every 15 seconds.
func (j *RegistryReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Registry reconciliation job started (running every 15 seconds)")
	return nil
}

// Stop stops the reconciliation job.
func (j *RegistryReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Registry reconciliation job stopped")
}

// Run replays all currently pending sync tasks once. Exposed for the cron
// closure and for tests; safe to call concurrently with scheduled runs since
// replays are idempotent.
func (j *RegistryReconciliationJob) Run(ctx context.Context) {
	pending, err := j.tasks.GetAllPending(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to load pending sync tasks", "error", err)
		return
	}

	for _, task := range pending {
		j.replay(ctx, task)
	}
}

func (j *RegistryReconciliationJob) replay(ctx context.Context, task *regsync.Task) {
	operation := func() error {
		switch task.Resource() {
		case regsync.ResourceVehicle:
			return j.vehicles.SetStatus(ctx, task.ResourceID(), task.VehicleStatus())
		case regsync.ResourceDriver:
			return j.drivers.SetAvailability(ctx, task.ResourceID(), task.DriverAvailable())
		default:
			return backoff.Permanent(task.Resource().Validate())
		}
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = 5 * time.Second

	err := backoff.Retry(operation, backoff.WithContext(policy, ctx))
	if err != nil {
		task.RecordAttempt()
		j.logger.WarnContext(ctx, "sync task replay failed, keeping for next run",
			"task_id", task.ID().String(),
			"resource", string(task.Resource()),
			"resource_id", task.ResourceID(),
			"attempts", task.Attempts(),
			"error", err,
		)
		if updateErr := j.tasks.Update(ctx, task); updateErr != nil {
			j.logger.ErrorContext(ctx, "failed to persist sync task attempt", "error", updateErr)
		}
		return
	}

	if deleteErr := j.tasks.Delete(ctx, task.ID()); deleteErr != nil {
		j.logger.ErrorContext(ctx, "failed to delete replayed sync task",
			"task_id", task.ID().String(),
			"error", deleteErr,
		)
		return
	}

	j.logger.InfoContext(ctx, "sync task replayed",
		"task_id", task.ID().String(),
		"resource", string(task.Resource()),
		"resource_id", task.ResourceID(),
	)
}
