// Package jobs provides scheduled background tasks for the marketplace service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob publishes domain events that the unit of work stored in
// outbox_messages and marks them published once the broker acknowledged them.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxRelaySchedule, 100, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields with seconds first. Overlapping runs are skipped.
//
// # Error Handling
//
// A failed relay is logged and retried on the next tick. Nothing is marked
// published unless the broker accepted the whole batch, so delivery is
// at least once.
package jobs
