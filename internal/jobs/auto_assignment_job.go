package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// AutoAssignmentJob runs a bulk assignment sweep on a fixed schedule so
// orders created between manual runs get assigned without operator action.
type AutoAssignmentJob struct {
	handler         commands.RunAssignmentsCommandHandler
	cron            *cron.Cron
	schedule        string
	maxOrdersPerRun int
	logger          *slog.Logger
}

// NewAutoAssignmentJob creates the scheduled bulk assignment sweep.
// schedule is a 6-field cron expression with seconds; maxOrdersPerRun of 0
// uses the bulk run's default batch size.
func NewAutoAssignmentJob(
	handler commands.RunAssignmentsCommandHandler,
	schedule string,
	maxOrdersPerRun int,
	logger *slog.Logger,
) *AutoAssignmentJob {
	return &AutoAssignmentJob{
		handler:         handler,
		cron:            cron.New(cron.WithSeconds()),
		schedule:        schedule,
		maxOrdersPerRun: maxOrdersPerRun,
		logger:          logger.With("component", "auto_assignment_job"),
	}
}

// Start schedules the sweep.
func (j *AutoAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *AutoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto assignment job stopped")
}

func (j *AutoAssignmentJob) runOnce() {
	ctx := context.Background()

	cmd, err := commands.NewRunAssignmentsCommand(j.maxOrdersPerRun, false, false)
	if err != nil {
		j.logger.ErrorContext(ctx, "Auto assignment sweep misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		// A serialization conflict means a concurrent run won the race;
		// the next tick retries against the new state.
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			j.logger.WarnContext(ctx, "Auto assignment sweep lost a concurrent race",
				"run_id", cmd.RunID(), "error", err)
			return
		}

		j.logger.ErrorContext(ctx, "Auto assignment sweep failed",
			"run_id", cmd.RunID(), "error", err)
		return
	}

	if result.TotalOrdersAssigned > 0 || len(result.Skipped) > 0 {
		j.logger.InfoContext(ctx, "Auto assignment sweep completed",
			"run_id", result.RunID,
			"processed", result.TotalOrdersProcessed,
			"assigned", result.TotalOrdersAssigned,
			"skipped", len(result.Skipped))
	}
}
