package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	occupancyReportJob *OccupancyReportJob
	warehouseDwellJob  *WarehouseDwellJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers and factories as dependencies to wire up the job execution.
func NewJobManager(
	occupancyHandler queries.GetOccupancyQueryHandler,
	uowFactory commands.UoWFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		occupancyReportJob: NewOccupancyReportJob(occupancyHandler, logger),
		warehouseDwellJob:  NewWarehouseDwellJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.occupancyReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start occupancy report job: %w", err)
	}

	if err := jm.warehouseDwellJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.occupancyReportJob.Stop()
		return fmt.Errorf("failed to start warehouse dwell job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.occupancyReportJob.Stop()
	jm.warehouseDwellJob.Stop()
}
