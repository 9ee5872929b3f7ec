package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OccupancyReportJob periodically logs the slot usage of every warehouse and
// vehicle so operators can spot resources running near capacity.
type OccupancyReportJob struct {
	handler queries.GetOccupancyQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOccupancyReportJob creates a job that reports occupancy once a minute.
func NewOccupancyReportJob(handler queries.GetOccupancyQueryHandler, logger *slog.Logger) *OccupancyReportJob {
	return &OccupancyReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "occupancy_report_job"),
	}
}

// Start begins the occupancy report job to run every minute.
func (j *OccupancyReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOccupancyQuery()

		resources, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Occupancy report job failed", "error", err)
			return
		}

		for _, resource := range resources {
			j.logger.InfoContext(ctx, "Resource occupancy",
				slog.String("kind", resource.Kind),
				slog.String("name", resource.Name),
				slog.Int("occupied", resource.Occupied),
				slog.Int("capacity", resource.Capacity),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy report job started (running every minute)")
	return nil
}

// Stop stops the occupancy report job.
func (j *OccupancyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Occupancy report job stopped")
}
