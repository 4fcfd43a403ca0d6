package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDriverHoursCommandIsNotConstructed = errors.New(
	"UpdateDriverHoursCommand must be created via NewUpdateDriverHoursCommand constructor",
)

// UpdateDriverHoursCommand represents a request to replace a driver's
// past-week hours wholesale.
type UpdateDriverHoursCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID
	pastWeek driver.WeekHours

	guard guard.ConstructorGuard
}

// NewUpdateDriverHoursCommand creates a command to replace a driver's
// past-week hours. The week itself is validated by driver.NewWeekHours
// before it reaches this constructor.
func NewUpdateDriverHoursCommand(driverID kernel.ID, pastWeek driver.WeekHours) (UpdateDriverHoursCommand, error) {
	command := UpdateDriverHoursCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return UpdateDriverHoursCommand{}, err
	}

	command.pastWeek = pastWeek
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverHoursCommandIsNotConstructed if validation fails.
func (c UpdateDriverHoursCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverHoursCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to update.
func (c UpdateDriverHoursCommand) DriverID() kernel.ID {
	return c.driverID
}

// PastWeek returns the replacement past-week hours.
func (c UpdateDriverHoursCommand) PastWeek() driver.WeekHours {
	return c.pastWeek
}

func (c *UpdateDriverHoursCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
