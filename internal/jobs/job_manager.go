package jobs

import (
	"fmt"
	"log/slog"
)

const (
	DefaultAuditSchedule = "0 */5 * * * *"
	DefaultStatsSchedule = "0 0 * * * *"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	auditJob *WorksStatusAuditJob
	statsJob *DeliveryStatsJob
}

// NewJobManager wires both jobs. Empty schedules fall back to the defaults.
func NewJobManager(
	finder DivergenceFinder,
	stats StatsSource,
	auditSchedule string,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	if auditSchedule == "" {
		auditSchedule = DefaultAuditSchedule
	}
	if statsSchedule == "" {
		statsSchedule = DefaultStatsSchedule
	}
	return &JobManager{
		auditJob: NewWorksStatusAuditJob(finder, auditSchedule, logger),
		statsJob: NewDeliveryStatsJob(stats, statsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.auditJob.Start(); err != nil {
		return fmt.Errorf("failed to start works status audit job: %w", err)
	}

	if err := jm.statsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.auditJob.Stop()
		return fmt.Errorf("failed to start delivery stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	jm.statsJob.Stop()
	jm.auditJob.Stop()
}
