// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the dispatch orchestrator.
//
// # Available Jobs
//
// 1. RegistryReconciliationJob - Runs every 15 seconds to replay pending
// registry synchronizations recorded when a post-persist registry call failed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(syncTaskRepo, vehicles, drivers, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Each pending task is replayed under a short exponential backoff. A task
// that still fails keeps its row with an incremented attempt counter and is
// picked up again on the next run; the job never drops a task on failure.
package jobs
