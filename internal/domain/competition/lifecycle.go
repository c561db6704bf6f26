package competition

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/errorx"
	"github.com/rutamapas/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Lifecycle owns every transition of a community's competition: creation of
// the single active one, lazy closing on expiry, bulk sweeping, and
// reconfiguration of the running window.
type Lifecycle interface {
	GetOrCreateActive(ctx context.Context, communityID string, durationDays int, createdBy string) (*entity.Competition, error)
	CloseIfExpired(ctx context.Context, competition *entity.Competition) error
	SweepExpired(ctx context.Context) (int, error)
	Reconfigure(ctx context.Context, communityID string, durationDays int) (*entity.Competition, error)
}

type lifecycle struct {
	competitionRepo repository.CompetitionRepository
	pointRepo       repository.CompetitionPointRepository
}

func NewLifecycle(
	competitionRepo repository.CompetitionRepository,
	pointRepo repository.CompetitionPointRepository,
) *lifecycle {
	return &lifecycle{
		competitionRepo: competitionRepo,
		pointRepo:       pointRepo,
	}
}

// GetOrCreateActive returns the community's active, not-yet-expired
// competition, creating one when none exists. The duration only applies to
// creation; an existing active competition keeps its configured window.
//
// Two concurrent callers cannot both create: the unique index on active_key
// rejects the second insert, which then re-reads the winner's row. When even
// the retry cannot see it (the winning transaction has not committed yet) the
// caller gets a transient failure and may simply try again.
func (l *lifecycle) GetOrCreateActive(
	ctx context.Context, communityID string, durationDays int, createdBy string,
) (*entity.Competition, error) {
	now := xcontext.Clock(ctx).Now()
	active, err := l.competitionRepo.GetActiveByCommunityID(ctx, communityID)
	if err == nil {
		// Lazy expiry: an overdue competition is closed here, which also
		// frees the active slot for the creation below.
		if err := l.CloseIfExpired(ctx, active); err != nil {
			return nil, err
		}

		if active.Status == entity.CompetitionActive {
			return active, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get active competition: %v", err)
		return nil, errorx.Unknown
	}

	competition := &entity.Competition{
		Base:         entity.Base{ID: uuid.NewString()},
		CommunityID:  communityID,
		DurationDays: durationDays,
		StartedAt:    now,
		EndedAt:      now.AddDate(0, 0, durationDays),
		Status:       entity.CompetitionActive,
		ActiveKey:    sql.NullString{String: communityID, Valid: true},
	}

	if createdBy != "" {
		competition.CreatedBy = sql.NullString{String: createdBy, Valid: true}
	}

	if err := l.competitionRepo.Create(ctx, competition); err != nil {
		if !isDuplicateKeyError(err) {
			xcontext.Logger(ctx).Errorf("Cannot create competition: %v", err)
			return nil, errorx.Unknown
		}

		active, err := l.competitionRepo.GetActiveByCommunityID(ctx, communityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.Unavailable, "Cannot determine the active competition, please retry")
			}

			xcontext.Logger(ctx).Errorf("Cannot get active competition after conflict: %v", err)
			return nil, errorx.Unknown
		}

		return active, nil
	}

	return competition, nil
}

// CloseIfExpired transitions an expired competition to closed, recording the
// winner from current standings. It is idempotent: the guarded update inside
// the store makes concurrent closers harmless, and a competition that is
// still running or already closed is left untouched. On a lost close race the
// given entity is refreshed so the caller observes the final state.
func (l *lifecycle) CloseIfExpired(ctx context.Context, competition *entity.Competition) error {
	now := xcontext.Clock(ctx).Now()
	if !Expired(competition, now) {
		return nil
	}

	points, err := l.pointRepo.GetByCompetitionID(ctx, competition.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get competition points: %v", err)
		return errorx.Unknown
	}

	winnerID := sql.NullString{}
	if id, ok := PickWinner(points); ok {
		winnerID = sql.NullString{String: id, Valid: true}
	}

	closed, err := l.competitionRepo.Close(ctx, competition.ID, winnerID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot close competition: %v", err)
		return errorx.Unknown
	}

	if closed {
		competition.Status = entity.CompetitionClosed
		competition.WinnerID = winnerID
		competition.ActiveKey = sql.NullString{}
		return nil
	}

	refreshed, err := l.competitionRepo.GetByID(ctx, competition.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot refresh closed competition: %v", err)
		return errorx.Unknown
	}

	*competition = *refreshed
	return nil
}

// SweepExpired closes every expired competition across all communities and
// returns how many it processed.
func (l *lifecycle) SweepExpired(ctx context.Context) (int, error) {
	now := xcontext.Clock(ctx).Now()
	expired, err := l.competitionRepo.GetExpired(ctx, now)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list expired competitions: %v", err)
		return 0, errorx.Unknown
	}

	count := 0
	for i := range expired {
		if err := l.CloseIfExpired(ctx, &expired[i]); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot close competition %s: %v", expired[i].ID, err)
			continue
		}

		count++
	}

	return count, nil
}

// Reconfigure recomputes the end of the active competition from its unchanged
// start. Shrinking the window into the past closes the competition within the
// same call, with the winner taken from current standings.
func (l *lifecycle) Reconfigure(
	ctx context.Context, communityID string, durationDays int,
) (*entity.Competition, error) {
	active, err := l.competitionRepo.GetActiveByCommunityID(ctx, communityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "No active competition to update")
		}

		xcontext.Logger(ctx).Errorf("Cannot get active competition: %v", err)
		return nil, errorx.Unknown
	}

	endedAt := active.StartedAt.AddDate(0, 0, durationDays)
	if err := l.competitionRepo.UpdateDuration(ctx, active.ID, durationDays, endedAt); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update competition duration: %v", err)
		return nil, errorx.Unknown
	}

	active.DurationDays = durationDays
	active.EndedAt = endedAt

	if err := l.CloseIfExpired(ctx, active); err != nil {
		return nil, err
	}

	return active, nil
}

func isDuplicateKeyError(err error) bool {
	// MySQL and SQLite report unique violations without a portable sentinel.
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
