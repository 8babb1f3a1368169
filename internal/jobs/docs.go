// Package jobs provides scheduled background tasks for the freight
// dispatch service, implemented with github.com/robfig/cron/v3.
//
// The only job today is PendingBacklogJob, which logs the size and age of
// the unclaimed shipment backlog once per minute. Jobs observe and report;
// shipment state only ever changes through explicit client, driver or
// admin requests, never in the background.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(backlogHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
