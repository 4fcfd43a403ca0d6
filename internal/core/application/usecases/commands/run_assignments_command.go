package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrRunAssignmentsCommandIsNotConstructed = errors.New(
	"RunAssignmentsCommand must be created via NewRunAssignmentsCommand constructor",
)

const (
	// DefaultMaxOrdersPerRun caps a bulk run when the caller passes zero.
	DefaultMaxOrdersPerRun = 100

	// MaxOrdersPerRunLimit is the hard upper bound of a bulk run.
	MaxOrdersPerRunLimit = 1000
)

// RunAssignmentsCommand represents a request to run one bulk assignment
// sweep. Each constructed command gets a fresh run ID used to correlate the
// run's log lines and response payload.
//
// Example:
//
//	cmd, err := NewRunAssignmentsCommand(0, false, false) // defaults to 100 orders
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRunAssignmentsCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type RunAssignmentsCommand struct { //nolint:recvcheck //using for validation
	maxOrdersPerRun int
	dryRun          bool
	forceReassign   bool
	runID           uuid.UUID

	guard guard.ConstructorGuard
}

// NewRunAssignmentsCommand creates a command for one bulk assignment run.
// maxOrdersPerRun zero means the default of 100; any other value must lie in
// [1, 1000].
func NewRunAssignmentsCommand(maxOrdersPerRun int, dryRun, forceReassign bool) (RunAssignmentsCommand, error) {
	command := RunAssignmentsCommand{
		dryRun:        dryRun,
		forceReassign: forceReassign,
		runID:         uuid.New(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := command.setMaxOrdersPerRun(maxOrdersPerRun); err != nil {
		return RunAssignmentsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunAssignmentsCommandIsNotConstructed if validation fails.
func (c RunAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrRunAssignmentsCommandIsNotConstructed)
}

// MaxOrdersPerRun returns the effective batch cap for this run.
func (c RunAssignmentsCommand) MaxOrdersPerRun() int {
	return c.maxOrdersPerRun
}

// DryRun reports whether the run computes without persisting anything.
func (c RunAssignmentsCommand) DryRun() bool {
	return c.dryRun
}

// ForceReassign reports whether the run skips the all-assigned zero-op
// check. Existing assignments are never touched; the run still matches
// only orders without an active assignment.
func (c RunAssignmentsCommand) ForceReassign() bool {
	return c.forceReassign
}

// RunID returns the correlation identifier of this run.
func (c RunAssignmentsCommand) RunID() uuid.UUID {
	return c.runID
}

func (c *RunAssignmentsCommand) setMaxOrdersPerRun(maxOrdersPerRun int) error {
	if maxOrdersPerRun == 0 {
		c.maxOrdersPerRun = DefaultMaxOrdersPerRun
		return nil
	}
	if maxOrdersPerRun < 1 || maxOrdersPerRun > MaxOrdersPerRunLimit {
		return errs.NewValueIsOutOfRangeError("maxOrdersPerRun", maxOrdersPerRun, 1, MaxOrdersPerRunLimit)
	}

	c.maxOrdersPerRun = maxOrdersPerRun
	return nil
}
