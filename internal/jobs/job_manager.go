package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoAssignmentJob *AutoAssignmentJob
	enabled           bool
}

// NewJobManager creates a job manager wiring the bulk assignment handler
// into the scheduled sweep. An empty schedule disables the sweep; StartAll
// then does nothing.
func NewJobManager(
	runAssignmentsHandler commands.RunAssignmentsCommandHandler,
	schedule string,
	maxOrdersPerRun int,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{enabled: schedule != ""}
	if jm.enabled {
		jm.autoAssignmentJob = NewAutoAssignmentJob(runAssignmentsHandler, schedule, maxOrdersPerRun, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if !jm.enabled {
		return nil
	}

	if err := jm.autoAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if !jm.enabled {
		return
	}

	jm.autoAssignmentJob.Stop()
}
