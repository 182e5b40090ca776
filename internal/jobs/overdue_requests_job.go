package jobs

import (
	"context"
	"errors"
	"log/slog"

	"ihm/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// overdueSweepSchedule runs the sweep at the top of every hour. Due
// dates have day granularity, so a tighter schedule buys nothing.
const overdueSweepSchedule = "0 0 * * * *"

// OverdueRequestsJob periodically sweeps pending declaration requests
// whose due date has passed so operators can chase the suppliers.
type OverdueRequestsJob struct {
	handler commands.FlagOverdueRequestsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueRequestsJob creates the overdue request sweep job.
func NewOverdueRequestsJob(
	handler commands.FlagOverdueRequestsCommandHandler, logger *slog.Logger,
) *OverdueRequestsJob {
	return &OverdueRequestsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_requests_job"),
	}
}

// Start begins the hourly overdue request sweep.
func (j *OverdueRequestsJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewFlagOverdueRequestsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is the normal case, not a failure.
			if !errors.Is(err, commands.ErrNoOverdueRequests) {
				j.logger.ErrorContext(ctx, "Overdue request sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue request sweep started (running hourly)")
	return nil
}

// Stop stops the overdue request sweep.
func (j *OverdueRequestsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue request sweep stopped")
}
