package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrNameIsRequired      = errors.New("name is required")
	ErrShiftHoursAreInvalid = errors.New("shift hours must be greater than 0 and at most 24")
)

// CreateDriverCommand represents a request to register a new driver.
// The past-week hours default to a zero week when the caller has no history
// to seed.
//
// Example:
//
//	week, _ := driver.ParseWeekHours("8|7.5|8|8|6|0|0")
//	cmd, err := NewCreateDriverCommand("Ravi Kumar", 8, week)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	name       string
	shiftHours float64
	pastWeek   driver.WeekHours

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates that name is not empty and the shift length is within a day.
func NewCreateDriverCommand(name string, shiftHours float64, pastWeek driver.WeekHours) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setShiftHours(shiftHours),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	command.pastWeek = pastWeek
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Name returns the driver name from the command.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// ShiftHours returns the driver's daily shift length in hours.
func (c CreateDriverCommand) ShiftHours() float64 {
	return c.shiftHours
}

// PastWeek returns the driver's seeded past-week hours.
func (c CreateDriverCommand) PastWeek() driver.WeekHours {
	return c.pastWeek
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setShiftHours(shiftHours float64) error {
	if shiftHours <= 0 || shiftHours > 24 {
		return ErrShiftHoursAreInvalid
	}

	c.shiftHours = shiftHours
	return nil
}
