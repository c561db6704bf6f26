package entity

import (
	"time"

	"gorm.io/gorm"
)

// Member links a user to a community. Its existence is the membership
// predicate checked before scoring or reading rankings.
type Member struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	CommunityID string    `gorm:"primaryKey"`
	Community   Community `gorm:"foreignKey:CommunityID"`
}
