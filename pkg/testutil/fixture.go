package testutil

import (
	"context"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/internal/repository"
)

var (
	// User1 is the creator and administrator of Community1.
	User1 = entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "alice",
		Role: entity.UserRole,
	}

	User2 = entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "bob",
		Role: entity.UserRole,
	}

	User3 = entity.User{
		Base: entity.Base{ID: "user3"},
		Name: "carol",
		Role: entity.UserRole,
	}

	// User4 is a global admin and not a member of Community1.
	User4 = entity.User{
		Base: entity.Base{ID: "user4"},
		Name: "dave",
		Role: entity.AdminRole,
	}

	RankTier1 = entity.RankTier{
		Base:      entity.Base{ID: "rank_tier1"},
		Name:      "Explorador",
		MinPoints: 0,
		MaxPoints: 99,
	}

	RankTier2 = entity.RankTier{
		Base:      entity.Base{ID: "rank_tier2"},
		Name:      "Aventurero",
		MinPoints: 100,
		MaxPoints: 999,
	}

	RankTier3 = entity.RankTier{
		Base:      entity.Base{ID: "rank_tier3"},
		Name:      "Leyenda",
		MinPoints: 1000,
		MaxPoints: 1000000,
	}

	Community1 = entity.Community{
		Base:        entity.Base{ID: "community1"},
		Handle:      "ruta-centro",
		DisplayName: "Ruta Centro",
		CreatedBy:   User1.ID,
	}
)

// CreateFixtureDb seeds the database with the fixture users, rank tiers, and
// one community whose members are User1, User2, and User3.
func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertRankTiers(ctx)
	InsertCommunities(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3, User4} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func InsertRankTiers(ctx context.Context) {
	rankTierRepo := repository.NewRankTierRepository()
	for _, tier := range []entity.RankTier{RankTier1, RankTier2, RankTier3} {
		tier := tier
		if err := rankTierRepo.Create(ctx, &tier); err != nil {
			panic(err)
		}
	}
}

func InsertCommunities(ctx context.Context) {
	communityRepo := repository.NewCommunityRepository()
	community := Community1
	if err := communityRepo.Create(ctx, &community); err != nil {
		panic(err)
	}

	memberRepo := repository.NewMemberRepository()
	for _, userID := range []string{User1.ID, User2.ID, User3.ID} {
		err := memberRepo.Create(ctx, &entity.Member{
			UserID:      userID,
			CommunityID: Community1.ID,
		})
		if err != nil {
			panic(err)
		}
	}
}
