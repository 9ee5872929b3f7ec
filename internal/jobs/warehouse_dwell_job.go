package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/parcel"

	"github.com/robfig/cron/v3"
)

// WarehouseDwellJob periodically counts parcels sitting in warehouse storage.
// A growing count with no dispatches is the earliest sign of a stalled
// sorting stage.
type WarehouseDwellJob struct {
	uowFactory commands.UoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewWarehouseDwellJob creates a job that reports warehouse dwell every five minutes.
func NewWarehouseDwellJob(uowFactory commands.UoWFactory, logger *slog.Logger) *WarehouseDwellJob {
	return &WarehouseDwellJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "warehouse_dwell_job"),
	}
}

// Start begins the warehouse dwell job to run every five minutes.
func (j *WarehouseDwellJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		// Read outside a transaction: the repository falls back to the main
		// connection when no transaction is active.
		uow := j.uowFactory.Create()
		parcels, err := uow.ParcelRepository().GetAllInStatus(ctx, parcel.StatusInWarehouse)
		if err != nil {
			j.logger.ErrorContext(ctx, "Warehouse dwell job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Parcels in warehouse storage",
			slog.Int("count", len(parcels)),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Warehouse dwell job started (running every five minutes)")
	return nil
}

// Stop stops the warehouse dwell job.
func (j *WarehouseDwellJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Warehouse dwell job stopped")
}
