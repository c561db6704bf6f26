package entity

type Community struct {
	Base
	Handle      string `gorm:"unique"`
	DisplayName string

	// CreatedBy is the community administrator for competition configuration.
	CreatedBy     string
	CreatedByUser User `gorm:"foreignKey:CreatedBy"`
}
