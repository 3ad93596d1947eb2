package jobs

import (
	"fmt"
	"log/slog"

	"mealdrop/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	requestTimeoutJob *RequestTimeoutJob
	heartbeatJob      *HeartbeatJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the command handler and hub as dependencies to wire up job execution.
func NewJobManager(
	timeoutHandler commands.TimeoutDeliveryRequestsCommandHandler,
	hub pinger,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		requestTimeoutJob: NewRequestTimeoutJob(timeoutHandler, logger),
		heartbeatJob:      NewHeartbeatJob(hub, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.requestTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start request timeout job: %w", err)
	}

	if err := jm.heartbeatJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.requestTimeoutJob.Stop()
		return fmt.Errorf("failed to start heartbeat job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.heartbeatJob.Stop()
	jm.requestTimeoutJob.Stop()
}
