package cron

import (
	"context"
	"time"

	"github.com/rutamapas/backend/internal/domain/competition"
	"github.com/rutamapas/backend/pkg/xcontext"
)

const sweepInterval = time.Hour

// SweepCompetitionsCronJob periodically closes overdue competitions so their
// winners are recorded even when nobody touches the community. The lifecycle
// closes lazily on access anyway; the sweep bounds how stale an idle
// community's history can get.
type SweepCompetitionsCronJob struct {
	lifecycle competition.Lifecycle
}

func NewSweepCompetitionsCronJob(lifecycle competition.Lifecycle) *SweepCompetitionsCronJob {
	return &SweepCompetitionsCronJob{lifecycle: lifecycle}
}

func (job *SweepCompetitionsCronJob) Do(ctx context.Context) {
	count, err := job.lifecycle.SweepExpired(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sweep expired competitions: %v", err)
		return
	}

	if count > 0 {
		xcontext.Logger(ctx).Infof("Closed %d expired competitions", count)
	}
}

func (job *SweepCompetitionsCronJob) RunNow() bool {
	return true
}

func (job *SweepCompetitionsCronJob) Next() time.Time {
	return time.Now().Add(sweepInterval)
}
