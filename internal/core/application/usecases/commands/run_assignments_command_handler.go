package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/services"

	"github.com/google/uuid"
)

// RunAssignmentsResult summarizes one bulk assignment run.
// Matches describe the computed mapping whether or not it was persisted;
// DryRun tells the caller which of the two happened.
type RunAssignmentsResult struct {
	RunID                uuid.UUID
	Matches              []services.Match
	Skipped              []services.SkippedOrder
	TotalOrdersProcessed int
	TotalOrdersAssigned  int
	DryRun               bool
}

// RunAssignmentsCommandHandler orchestrates one bulk assignment run: load
// the candidate orders and the driver pool, let the matcher compute the
// mapping, persist the resulting assignments. Everything after the zero-op
// check runs inside one serializable transaction, so a concurrent run either
// sees this run's assignments or none of them.
//
// Repeating a run against an already-assigned set is a no-op: with no
// unassigned orders left, a plain run returns an empty result without
// opening a transaction. forceReassign and dryRun skip that check and go
// through the full matching path; neither ever mutates or removes an
// existing assignment, and the matcher only sees orders without one.
type RunAssignmentsCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRunAssignmentsCommandHandler creates a handler for bulk assignment runs.
// Requires an AssignmentUoWFactory for the serializable transaction.
func NewRunAssignmentsCommandHandler(uowFactory AssignmentUoWFactory) RunAssignmentsCommandHandler {
	return RunAssignmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one bulk assignment run and returns its summary.
func (h RunAssignmentsCommandHandler) Handle(
	ctx context.Context,
	cmd RunAssignmentsCommand,
) (RunAssignmentsResult, error) {
	if err := cmd.Validate(); err != nil {
		return RunAssignmentsResult{}, err
	}

	uow := h.uowFactory.Create()

	if !cmd.ForceReassign() && !cmd.DryRun() {
		done, err := h.nothingLeftToAssign(ctx, uow)
		if err != nil {
			return RunAssignmentsResult{}, err
		}
		if done {
			return RunAssignmentsResult{RunID: cmd.RunID(), DryRun: cmd.DryRun()}, nil
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return RunAssignmentsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.OrderRepository().GetAllUnassigned(ctx)
	if err != nil {
		return RunAssignmentsResult{}, err
	}

	drivers, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return RunAssignmentsResult{}, err
	}

	initialWorkload, err := h.initialWorkloads(ctx, uow, drivers)
	if err != nil {
		return RunAssignmentsResult{}, err
	}

	matched, err := services.NewAssignmentMatcher().Match(
		candidates,
		drivers,
		initialWorkload,
		cmd.MaxOrdersPerRun(),
	)
	if err != nil {
		return RunAssignmentsResult{}, err
	}

	if !cmd.DryRun() {
		if err = h.persistMatches(ctx, uow, matched.Matches); err != nil {
			return RunAssignmentsResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return RunAssignmentsResult{}, err
		}
	}

	return RunAssignmentsResult{
		RunID:                cmd.RunID(),
		Matches:              matched.Matches,
		Skipped:              matched.Skipped,
		TotalOrdersProcessed: len(matched.Matches) + len(matched.Skipped),
		TotalOrdersAssigned:  len(matched.Matches),
		DryRun:               cmd.DryRun(),
	}, nil
}

// nothingLeftToAssign reports whether the run can end before a transaction
// even opens: no unassigned orders remain and at least one assignment
// already covers the active set. Both reads run outside a transaction.
func (h RunAssignmentsCommandHandler) nothingLeftToAssign(ctx context.Context, uow AssignmentUoW) (bool, error) {
	unassigned, err := uow.OrderRepository().GetAllUnassigned(ctx)
	if err != nil {
		return false, err
	}
	if len(unassigned) > 0 {
		return false, nil
	}

	existing, err := uow.AssignmentRepository().GetAll(ctx)
	if err != nil {
		return false, err
	}

	return len(existing) > 0, nil
}

// initialWorkloads computes each driver's committed minutes at the start of
// the run from the active assignments.
func (h RunAssignmentsCommandHandler) initialWorkloads(
	ctx context.Context,
	uow AssignmentUoW,
	drivers []*driver.Driver,
) (map[int64]int, error) {
	active, err := uow.AssignmentRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	calc := services.NewWorkloadCalculator()
	workloads := make(map[int64]int, len(drivers))
	for _, d := range drivers {
		workloads[d.ID().Int64()] = calc.CurrentWorkload(d.ID(), active, nil)
	}

	return workloads, nil
}

func (h RunAssignmentsCommandHandler) persistMatches(
	ctx context.Context,
	uow AssignmentUoW,
	matches []services.Match,
) error {
	assignedAt := time.Now().UTC()
	for _, m := range matches {
		newAssignment, err := assignment.NewAssignment(
			m.Order.ID(),
			m.Driver.ID(),
			m.EstimatedTimeMin,
			assignedAt,
		)
		if err != nil {
			return err
		}

		if _, err = uow.AssignmentRepository().Add(ctx, newAssignment); err != nil {
			return err
		}
	}

	return nil
}
