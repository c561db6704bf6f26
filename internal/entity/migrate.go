package entity

import (
	"context"

	"github.com/rutamapas/backend/pkg/xcontext"
)

// MigrateTable creates or updates every table. Tests run it against an
// in-memory database; production uses the versioned migration package.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&RankTier{},
		&Community{},
		&Member{},
		&Competition{},
		&CompetitionPoint{},
		&Migration{},
	)
}
