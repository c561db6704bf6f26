package common

import (
	"context"
	"errors"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

// CommunityAdminVerifier authorizes competition configuration. The community
// creator is its administrator; global admins pass everywhere.
type CommunityAdminVerifier struct {
	userRepo repository.UserRepository
}

func NewCommunityAdminVerifier(userRepo repository.UserRepository) *CommunityAdminVerifier {
	return &CommunityAdminVerifier{userRepo: userRepo}
}

func (verifier *CommunityAdminVerifier) Verify(ctx context.Context, community *entity.Community) error {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return errors.New("user is not authenticated")
	}

	if community.CreatedBy == userID {
		return nil
	}

	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return errors.New("user is not valid")
	}

	if !slices.Contains(entity.GlobalAdminRoles, u.Role) {
		return errors.New("user does not have permission")
	}

	return nil
}
