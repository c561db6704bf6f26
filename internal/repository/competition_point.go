package repository

import (
	"context"
	"errors"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserPoints is one row of a ranking snapshot.
type UserPoints struct {
	UserID string
	Name   string
	Points int64
}

type CompetitionPointRepository interface {
	Upsert(ctx context.Context, data *entity.CompetitionPoint) error
	Get(ctx context.Context, competitionID, userID string) (*entity.CompetitionPoint, error)
	GetByCompetitionID(ctx context.Context, competitionID string) ([]entity.CompetitionPoint, error)
	ChangePoints(ctx context.Context, competitionID, userID string, delta int64) error
	GetTop(ctx context.Context, competitionID string) (*entity.CompetitionPoint, error)
	GetRanking(ctx context.Context, competitionID string, limit int) ([]UserPoints, error)
	GetMemberPoints(ctx context.Context, communityID, competitionID string) ([]UserPoints, error)
}

type competitionPointRepository struct{}

func NewCompetitionPointRepository() *competitionPointRepository {
	return &competitionPointRepository{}
}

// Upsert creates the (competition, user) row with zero points if it does not
// exist yet. An existing row is left untouched.
func (r *competitionPointRepository) Upsert(ctx context.Context, data *entity.CompetitionPoint) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "competition_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(data).Error
}

func (r *competitionPointRepository) Get(
	ctx context.Context, competitionID, userID string,
) (*entity.CompetitionPoint, error) {
	var result entity.CompetitionPoint
	err := xcontext.DB(ctx).
		Where("competition_id=? AND user_id=?", competitionID, userID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *competitionPointRepository) GetByCompetitionID(
	ctx context.Context, competitionID string,
) ([]entity.CompetitionPoint, error) {
	var result []entity.CompetitionPoint
	err := xcontext.DB(ctx).Where("competition_id=?", competitionID).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ChangePoints applies a delta clamped at zero inside the database, so the
// order of concurrent deltas decides the result and no total goes negative.
func (r *competitionPointRepository) ChangePoints(
	ctx context.Context, competitionID, userID string, delta int64,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.CompetitionPoint{}).
		Where("competition_id=? AND user_id=?", competitionID, userID).
		Update("points", gorm.Expr("CASE WHEN points + ? < 0 THEN 0 ELSE points + ? END", delta, delta))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	return nil
}

// GetTop returns the winning row: highest points, ties broken by the lowest
// user id.
func (r *competitionPointRepository) GetTop(
	ctx context.Context, competitionID string,
) (*entity.CompetitionPoint, error) {
	var result entity.CompetitionPoint
	err := xcontext.DB(ctx).
		Where("competition_id=?", competitionID).
		Order("points DESC").
		Order("user_id ASC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *competitionPointRepository) GetRanking(
	ctx context.Context, competitionID string, limit int,
) ([]UserPoints, error) {
	var result []UserPoints
	err := xcontext.DB(ctx).
		Table("competition_points").
		Select("users.id AS user_id, users.name AS name, competition_points.points AS points").
		Joins("JOIN users ON users.id=competition_points.user_id").
		Where("competition_points.competition_id=?", competitionID).
		Where("competition_points.deleted_at IS NULL").
		Order("points DESC").
		Order("user_id ASC").
		Limit(limit).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetMemberPoints lists every community member left-joined with their point
// row for the given competition. Members without a row contribute zero. The
// snapshot is unordered; ordering and truncation are done in memory by the
// statistic package.
func (r *competitionPointRepository) GetMemberPoints(
	ctx context.Context, communityID, competitionID string,
) ([]UserPoints, error) {
	var result []UserPoints
	err := xcontext.DB(ctx).
		Table("members").
		Select("users.id AS user_id, users.name AS name, COALESCE(competition_points.points, 0) AS points").
		Joins("JOIN users ON users.id=members.user_id").
		Joins("LEFT JOIN competition_points ON competition_points.user_id=members.user_id "+
			"AND competition_points.competition_id=? AND competition_points.deleted_at IS NULL", competitionID).
		Where("members.community_id=?", communityID).
		Where("members.deleted_at IS NULL").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
