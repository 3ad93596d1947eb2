// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the coordination engine.
//
// # Available Jobs
//
// 1. RequestTimeoutJob - Runs every second to time out delivery requests that
// outlived their response window, so the orders they offered become available
// for other couriers again.
//
// 2. HeartbeatJob - Runs every 20 seconds to ping WebSocket clients and drop
// half-open connections.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(timeoutHandler, hub, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The timeout sweep already tolerates racing resolutions internally; anything
// it still returns is a system fault and gets logged. Failed job starts stop
// any already running jobs.
package jobs
