// Package commands contains the dispatch orchestrator's write operations.
// Each job lifecycle event is a command plus a handler: the handler re-reads
// current job state, applies the transition, persists it, and issues
// compensating calls to the vehicle and driver registries. Commands follow a
// consistent pattern: constructor validation, per-job locking where the
// operation mutates an existing job, transaction management, then best-effort
// registry synchronization with drift recorded for reconciliation.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Registry calls stay outside these transactions: there is no distributed
// transaction, so cross-service consistency is eventual, via regsync tasks.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// SyncTaskRepoFactory provides access to the registry-sync outbox within
	// a transaction.
	SyncTaskRepoFactory interface {
		SyncTaskRepository() ports.RegistrySyncTaskRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// UoW manages transactions spanning the job store and the sync outbox.
	// Used by commands whose registry calls may need drift recorded.
	UoW interface {
		TxManager
		JobRepoFactory
		SyncTaskRepoFactory
	}

	// UoWFactory creates new unit of work instances for job+outbox operations.
	UoWFactory interface {
		Create() UoW
	}
)
