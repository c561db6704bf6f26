package entity

// CompetitionPoint holds one user's score inside one competition. It is
// created lazily with zero points on the first contribution.
type CompetitionPoint struct {
	Base
	CompetitionID string      `gorm:"uniqueIndex:idx_competition_points_competition_user,priority:1;index:idx_competition_points_competition_points,priority:1"`
	Competition   Competition `gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE"`

	UserID string `gorm:"uniqueIndex:idx_competition_points_competition_user,priority:2"`
	User   User   `gorm:"foreignKey:UserID"`

	Points int64 `gorm:"index:idx_competition_points_competition_points,priority:2"`
}
