// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based (github.com/robfig/cron/v3 with a seconds field) and only
// ever act through command handlers.
//
// # Available Jobs
//
// 1. PendingOrderExpiryJob - cancels orders still Pending after the configured TTL
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, "0 * * * * *", 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed pass is logged and retried on the next tick
// - Orders that left Pending between listing and cancelling are skipped, not reported
// - An invalid schedule or a non-positive TTL fails StartAll
package jobs
