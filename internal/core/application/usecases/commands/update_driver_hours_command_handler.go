package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// UpdateDriverHoursCommandHandler handles wholesale replacement of a
// driver's past-week hours.
type UpdateDriverHoursCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverHoursCommandHandler creates a handler for past-week hour
// updates. Requires a DriverUoWFactory for transactional persistence.
func NewUpdateDriverHoursCommandHandler(uowFactory DriverUoWFactory) UpdateDriverHoursCommandHandler {
	return UpdateDriverHoursCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle retrieves the driver, replaces the past-week hours and persists the
// change. Returns the updated driver.
func (h *UpdateDriverHoursCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDriverHoursCommand,
) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	driverEntity, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = driverEntity.ReplacePastWeek(cmd.PastWeek()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, driverEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return driverEntity, nil
}
