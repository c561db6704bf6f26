package entity

import "database/sql"

type User struct {
	Base
	Name string `gorm:"unique"`
	Role string `gorm:"default:USER"`

	// Points is the cumulative global score. It never goes below zero.
	Points int64

	// Streak counts consecutive activity and is managed by the client.
	Streak int64

	RankTierID sql.NullString
	RankTier   RankTier `gorm:"foreignKey:RankTierID"`
}

const (
	SuperAdminRole = "SUPER_ADMIN"
	AdminRole      = "ADMIN"
	UserRole       = "USER"
)

var GlobalAdminRoles = []string{SuperAdminRole, AdminRole}
