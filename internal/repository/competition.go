package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/pkg/xcontext"
)

type CompetitionRepository interface {
	Create(ctx context.Context, data *entity.Competition) error
	GetByID(ctx context.Context, id string) (*entity.Competition, error)
	GetActiveByCommunityID(ctx context.Context, communityID string) (*entity.Competition, error)
	GetExpired(ctx context.Context, now time.Time) ([]entity.Competition, error)
	Close(ctx context.Context, id string, winnerID sql.NullString) (bool, error)
	UpdateDuration(ctx context.Context, id string, durationDays int, endedAt time.Time) error
	GetClosedByCommunityID(ctx context.Context, communityID string, offset, limit int) ([]entity.Competition, error)
	CountClosedByCommunityID(ctx context.Context, communityID string) (int64, error)
}

type competitionRepository struct{}

func NewCompetitionRepository() *competitionRepository {
	return &competitionRepository{}
}

func (r *competitionRepository) Create(ctx context.Context, data *entity.Competition) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *competitionRepository) GetByID(ctx context.Context, id string) (*entity.Competition, error) {
	var result entity.Competition
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// GetActiveByCommunityID returns the community's single active competition,
// expired or not. Expiry is decided by the lifecycle, not by this query, so
// that an overdue competition is closed instead of silently skipped.
func (r *competitionRepository) GetActiveByCommunityID(
	ctx context.Context, communityID string,
) (*entity.Competition, error) {
	var result entity.Competition
	err := xcontext.DB(ctx).
		Where("community_id=? AND status=?", communityID, entity.CompetitionActive).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *competitionRepository) GetExpired(ctx context.Context, now time.Time) ([]entity.Competition, error) {
	var result []entity.Competition
	err := xcontext.DB(ctx).
		Where("status=? AND ended_at <= ?", entity.CompetitionActive, now).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Close transitions a competition to closed and records the winner. The guard
// on status makes it a no-op for an already-closed competition; the returned
// flag reports whether this call performed the transition.
func (r *competitionRepository) Close(
	ctx context.Context, id string, winnerID sql.NullString,
) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Competition{}).
		Where("id=? AND status=?", id, entity.CompetitionActive).
		Updates(map[string]any{
			"status":     entity.CompetitionClosed,
			"winner_id":  winnerID,
			"active_key": nil,
		})

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *competitionRepository) UpdateDuration(
	ctx context.Context, id string, durationDays int, endedAt time.Time,
) error {
	return xcontext.DB(ctx).
		Model(&entity.Competition{}).
		Where("id=? AND status=?", id, entity.CompetitionActive).
		Updates(map[string]any{
			"duration_days": durationDays,
			"ended_at":      endedAt,
		}).Error
}

func (r *competitionRepository) GetClosedByCommunityID(
	ctx context.Context, communityID string, offset, limit int,
) ([]entity.Competition, error) {
	var result []entity.Competition
	err := xcontext.DB(ctx).
		Where("community_id=? AND status=?", communityID, entity.CompetitionClosed).
		Order("ended_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *competitionRepository) CountClosedByCommunityID(
	ctx context.Context, communityID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Competition{}).
		Where("community_id=? AND status=?", communityID, entity.CompetitionClosed).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
