package domain

import (
	"context"
	"errors"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/errorx"
	"github.com/rutamapas/backend/pkg/xcontext"
	"gorm.io/gorm"
)

func getCommunityByHandle(
	ctx context.Context, communityRepo repository.CommunityRepository, handle string,
) (*entity.Community, error) {
	if handle == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty community handle")
	}

	community, err := communityRepo.GetByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found community")
		}

		xcontext.Logger(ctx).Errorf("Cannot get community: %v", err)
		return nil, errorx.Unknown
	}

	return community, nil
}

// requireMember checks the membership predicate before any scoring or ranking
// operation touches the ledger.
func requireMember(
	ctx context.Context, memberRepo repository.MemberRepository, userID, communityID string,
) error {
	if _, err := memberRepo.Get(ctx, userID, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.PermissionDenied, "User is not a member of the community")
		}

		xcontext.Logger(ctx).Errorf("Cannot check membership: %v", err)
		return errorx.Unknown
	}

	return nil
}
