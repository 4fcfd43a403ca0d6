// Package jobs provides the scheduled background tasks of the assignment
// engine, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AutoAssignmentJob - periodically runs a bulk assignment sweep so orders
// created between manual runs get picked up without operator action.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(runAssignmentsHandler, schedule, maxOrdersPerRun, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is a 6-field cron expression (seconds included) taken
// from configuration; an empty schedule disables the job entirely.
//
// # Error Handling
//
// The bulk run is idempotent against a fully assigned set, so a sweep that
// finds nothing to do is silent. Serialization conflicts mean a concurrent
// run won the race; the next tick retries, so they are logged as warnings
// rather than errors.
package jobs
