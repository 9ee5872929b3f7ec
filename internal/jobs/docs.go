// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic reporting for the parcel lifecycle service.
//
// # Available Jobs
//
// 1. OccupancyReportJob - Runs every minute to log warehouse and vehicle slot usage
// 2. WarehouseDwellJob - Runs every five minutes to count parcels held in warehouse storage
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(occupancyHandler, uowFactory, logger)
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
// Both jobs only read state, so failures are logged and the next tick retries.
// Failed job starts will stop any already running jobs.
package jobs
