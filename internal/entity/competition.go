package entity

import (
	"database/sql"
	"time"

	"github.com/rutamapas/backend/pkg/enum"
)

type CompetitionStatus string

var (
	CompetitionActive = enum.New(CompetitionStatus("active"))
	CompetitionClosed = enum.New(CompetitionStatus("closed"))
)

// Competition is a time-boxed scoring period of a community. A community has
// at most one active competition at any instant; the unique index on
// ActiveKey enforces that inside the store, not only in application logic.
type Competition struct {
	Base
	CommunityID string    `gorm:"index:idx_competitions_community_status,priority:1;index:idx_competitions_community_ended_at,priority:1"`
	Community   Community `gorm:"foreignKey:CommunityID"`

	DurationDays int
	StartedAt    time.Time
	EndedAt      time.Time         `gorm:"index:idx_competitions_community_ended_at,priority:2"`
	Status       CompetitionStatus `gorm:"index:idx_competitions_community_status,priority:2"`

	// ActiveKey equals CommunityID while active and is cleared when the
	// competition closes.
	ActiveKey sql.NullString `gorm:"uniqueIndex"`

	WinnerID sql.NullString
	Winner   User `gorm:"foreignKey:WinnerID"`

	CreatedBy     sql.NullString
	CreatedByUser User `gorm:"foreignKey:CreatedBy"`
}
