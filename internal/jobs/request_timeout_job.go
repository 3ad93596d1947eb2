package jobs

import (
	"context"
	"log/slog"

	"mealdrop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RequestTimeoutJob sweeps unresolved delivery requests that outlived their
// response window. Runs every second so expired offers release quickly.
type RequestTimeoutJob struct {
	handler commands.TimeoutDeliveryRequestsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRequestTimeoutJob creates a new job for expiring delivery requests.
func NewRequestTimeoutJob(handler commands.TimeoutDeliveryRequestsCommandHandler, logger *slog.Logger) *RequestTimeoutJob {
	return &RequestTimeoutJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "request_timeout_job"),
	}
}

// Start begins the timeout sweep, running every second.
func (j *RequestTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewTimeoutDeliveryRequestsCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to construct timeout command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery request timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery request timeout job started (running every second)")
	return nil
}

// Stop stops the timeout sweep.
func (j *RequestTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery request timeout job stopped")
}
