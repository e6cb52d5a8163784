package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fluxi/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAssignmentJob retries assignment of pending orders. An order stays
// pending when no courier was offerable at creation time; this job picks it
// up as soon as a courier frees up.
type OrderAssignmentJob struct {
	handler commands.AutoAssignOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAssignmentJob creates a job that dispatches the oldest pending
// order every fifteen seconds.
func NewOrderAssignmentJob(handler commands.AutoAssignOrderCommandHandler, logger *slog.Logger) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_assignment_job"),
	}
}

// Start schedules the job.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// No pending order and no free courier are normal outcomes
			// between deliveries, not failures.
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoCourierAvailable) {
				j.logger.ErrorContext(ctx, "Order assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started (running every 15 seconds)")
	return nil
}

// Stop stops the job.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}
