// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// read-only: they observe the stored state and log what they find.
//
// # Available Jobs
//
//  1. WorksStatusAuditJob - reports riders whose works status disagrees with the
//     number of undelivered parcels assigned to them. Rider writes are never
//     transactional with parcel writes, so this is how a partial transition shows up.
//  2. DeliveryStatsJob - logs the parcel count per delivery status.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(divergenceHandler, statsHandler, cfg.AuditSchedule, cfg.StatsSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Query failures are logged and the pass is skipped. A job that fails to start
// stops the ones already running.
package jobs
