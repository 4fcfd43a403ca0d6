package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
	ErrDriverRefIsRequired = errors.New("driver id or name is required")
)

// AssignOrderCommand represents a request to assign one specific order to one
// specific driver. The driver reference is kept raw: a value that parses as a
// positive integer is treated as an identifier, anything else as an exact
// name.
//
// Example:
//
//	orderID, _ := kernel.NewID(42)
//	cmd, err := NewAssignOrderCommand(orderID, "Ravi Kumar")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	driverRef string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a driver.
// Validates that the order ID is valid and the driver reference is not empty.
func NewAssignOrderCommand(orderID kernel.ID, driverRef string) (AssignOrderCommand, error) {
	command := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverRef(driverRef),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// DriverRef returns the raw driver reference (numeric ID or exact name).
func (c AssignOrderCommand) DriverRef() string {
	return c.driverRef
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setDriverRef(driverRef string) error {
	if driverRef == "" {
		return ErrDriverRefIsRequired
	}

	c.driverRef = driverRef
	return nil
}
