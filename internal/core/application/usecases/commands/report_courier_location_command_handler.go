package commands

import (
	"context"
	"time"
)

// ReportCourierLocationCommandHandler records courier position updates.
type ReportCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewReportCourierLocationCommandHandler creates a handler for location
// update operations.
func NewReportCourierLocationCommandHandler(uowFactory CourierUoWFactory) ReportCourierLocationCommandHandler {
	return ReportCourierLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update command.
func (h ReportCourierLocationCommandHandler) Handle(ctx context.Context, cmd ReportCourierLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	now := time.Now()
	if cmd.Sharing() {
		if err = c.ReportLocation(cmd.Point(), now); err != nil {
			return err
		}
	} else {
		c.StopSharingLocation(now)
	}

	if err = uow.CourierRepository().Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
