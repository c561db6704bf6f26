package repository

import (
	"context"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/pkg/xcontext"
)

type MemberRepository interface {
	Create(ctx context.Context, data *entity.Member) error
	Get(ctx context.Context, userID, communityID string) (*entity.Member, error)
	Count(ctx context.Context, communityID string) (int64, error)
}

type memberRepository struct{}

func NewMemberRepository() *memberRepository {
	return &memberRepository{}
}

func (r *memberRepository) Create(ctx context.Context, data *entity.Member) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *memberRepository) Get(ctx context.Context, userID, communityID string) (*entity.Member, error) {
	var result entity.Member
	err := xcontext.DB(ctx).Where("user_id=? AND community_id=?", userID, communityID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *memberRepository) Count(ctx context.Context, communityID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Member{}).
		Where("community_id=?", communityID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
