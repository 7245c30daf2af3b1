// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. RoutePlanningJob - Runs every five minutes to refresh the suggested
// courier run over orders waiting for delivery
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(planRouteHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The route planning job logs failures and keeps running; a failed refresh
//   never takes the API down with it
// - Failed job starts will stop any already running jobs
package jobs
