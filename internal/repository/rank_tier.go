package repository

import (
	"context"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/pkg/xcontext"
)

type RankTierRepository interface {
	Create(ctx context.Context, data *entity.RankTier) error
	GetList(ctx context.Context) ([]entity.RankTier, error)
	GetByPoints(ctx context.Context, points int64) (*entity.RankTier, error)
	GetNext(ctx context.Context, points int64) (*entity.RankTier, error)
}

type rankTierRepository struct{}

func NewRankTierRepository() *rankTierRepository {
	return &rankTierRepository{}
}

func (r *rankTierRepository) Create(ctx context.Context, data *entity.RankTier) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *rankTierRepository) GetList(ctx context.Context) ([]entity.RankTier, error) {
	var result []entity.RankTier
	if err := xcontext.DB(ctx).Order("min_points ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rankTierRepository) GetByPoints(ctx context.Context, points int64) (*entity.RankTier, error) {
	var result entity.RankTier
	err := xcontext.DB(ctx).
		Where("min_points <= ? AND max_points >= ?", points, points).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetNext returns the lowest tier strictly above the given points.
func (r *rankTierRepository) GetNext(ctx context.Context, points int64) (*entity.RankTier, error) {
	var result entity.RankTier
	err := xcontext.DB(ctx).
		Where("min_points > ?", points).
		Order("min_points ASC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
