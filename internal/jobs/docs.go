// Package jobs provides scheduled background tasks for the compliance
// workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request/response API cannot cover.
//
// # Available Jobs
//
// 1. OverdueRequestsJob - Runs hourly to flag pending declaration requests whose due date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(flagOverdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep treats an empty result as an expected business outcome and
// only logs genuine failures. It never mutates workflow state; requests
// stay pending until a supplier submits or an operator resolves them.
package jobs
