// Package jobs provides scheduled background tasks for the mission-control service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for housekeeping that no operator request triggers.
//
// # Available Jobs
//
// 1. SessionReaperJob - Closes mission-control sessions left idle, stopping their status pollers
// 2. ViewReaperJob - Closes telemetry views nobody reads or streams
//
// Per-session status polling and per-view telemetry polling are not jobs:
// they start and stop with their mission or view, see internal/pkg/periodic.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reapSessionsHandler, reapViewsHandler, 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "0 * * * * *": once a minute, at second zero.
// Idle timeouts are measured in minutes so a finer schedule buys nothing.
package jobs
