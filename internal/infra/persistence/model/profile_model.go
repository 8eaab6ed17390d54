package model

import "time"

// ProfileModel mirrors the 'profiles' table. ID is the identity provider's subject, not a local key.
type ProfileModel struct {
	ID        string `gorm:"type:varchar(255);primaryKey"`
	Email     string `gorm:"type:varchar(255);index"`
	FirstName string `gorm:"type:varchar(100)"`
	LastName  string `gorm:"type:varchar(100)"`
	FullName  string `gorm:"type:varchar(200)"`
	Username  string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
