package jobs

import (
	"context"
	"log/slog"

	"courierdispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DivergenceFinder is implemented by queries.GetWorksStatusDivergenceQueryHandler.
type DivergenceFinder interface {
	Handle(ctx context.Context, query queries.GetWorksStatusDivergenceQuery) ([]queries.WorksStatusDivergence, error)
}

// WorksStatusAuditJob reports riders whose works status disagrees with the
// number of parcels they are carrying. It only logs; nothing is repaired.
type WorksStatusAuditJob struct {
	finder   DivergenceFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewWorksStatusAuditJob(finder DivergenceFinder, schedule string, logger *slog.Logger) *WorksStatusAuditJob {
	return &WorksStatusAuditJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "works_status_audit_job"),
	}
}

func (j *WorksStatusAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Works status audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit pass and returns the number of divergent riders.
func (j *WorksStatusAuditJob) Run(ctx context.Context) int {
	divergent, err := j.finder.Handle(ctx, queries.NewGetWorksStatusDivergenceQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Works status audit failed", "error", err)
		return 0
	}

	for _, d := range divergent {
		j.logger.WarnContext(ctx, "Rider works status diverges from active parcels",
			"rider_id", d.RiderID.String(),
			"email", d.Email,
			"works_status", d.WorksStatus,
			"active_parcels", d.ActiveParcels,
		)
	}
	return len(divergent)
}

func (j *WorksStatusAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Works status audit job stopped")
}
