package migration

import (
	"context"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/pkg/xcontext"
)

// migrate0000 will create the database with the latest version.
func migrate0000(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.RankTier{},
		&entity.Community{},
		&entity.Member{},
		&entity.Competition{},
		&entity.CompetitionPoint{},
		&entity.Migration{},
	)
}
