package jobs

import (
	"context"
	"log/slog"

	"courierdispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsSource is implemented by queries.GetDeliveryStatusStatsQueryHandler.
type StatsSource interface {
	Handle(ctx context.Context, query queries.GetDeliveryStatusStatsQuery) ([]queries.DeliveryStatusCount, error)
}

// DeliveryStatsJob periodically logs how many parcels sit in each delivery status.
type DeliveryStatsJob struct {
	source   StatsSource
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDeliveryStatsJob(source StatsSource, schedule string, logger *slog.Logger) *DeliveryStatsJob {
	return &DeliveryStatsJob{
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_stats_job"),
	}
}

func (j *DeliveryStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery stats job started", "schedule", j.schedule)
	return nil
}

// Run logs one snapshot.
func (j *DeliveryStatsJob) Run(ctx context.Context) {
	stats, err := j.source.Handle(ctx, queries.NewGetDeliveryStatusStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery stats job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(stats))
	var total int64
	for _, s := range stats {
		attrs = append(attrs, s.Status, s.Count)
		total += s.Count
	}
	attrs = append(attrs, "total", total)
	j.logger.InfoContext(ctx, "Delivery status snapshot", attrs...)
}

func (j *DeliveryStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery stats job stopped")
}
