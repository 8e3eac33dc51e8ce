// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(uowFactory, notifier, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DeliveryReminderJob runs every fifteen minutes, finds in-transit orders
// whose estimated delivery time has passed, and notifies the customer and the
// assigned delivery agent. It never mutates order state; reminders are purely
// advisory.
package jobs
