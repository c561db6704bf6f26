package entity

import "time"

// Migration records which versioned migrators have been applied.
type Migration struct {
	Version   string `gorm:"primarykey"`
	CreatedAt time.Time
}
