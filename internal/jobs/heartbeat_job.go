package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// pinger is the part of the WebSocket hub the heartbeat needs.
type pinger interface {
	Ping()
}

// HeartbeatJob pings all WebSocket connections so half-open ones are detected
// and dropped. Runs every 20 seconds.
type HeartbeatJob struct {
	hub    pinger
	cron   *cron.Cron
	logger *slog.Logger
}

// NewHeartbeatJob creates a new job for pinging WebSocket clients.
func NewHeartbeatJob(hub pinger, logger *slog.Logger) *HeartbeatJob {
	return &HeartbeatJob{
		hub:    hub,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "heartbeat_job"),
	}
}

// Start begins the heartbeat, running every 20 seconds.
func (j *HeartbeatJob) Start() error {
	_, err := j.cron.AddFunc("*/20 * * * * *", func() {
		j.hub.Ping()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "WebSocket heartbeat job started (running every 20 seconds)")
	return nil
}

// Stop stops the heartbeat.
func (j *HeartbeatJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "WebSocket heartbeat job stopped")
}
