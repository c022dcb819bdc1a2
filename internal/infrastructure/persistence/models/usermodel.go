package models

// UserModel persists users. UsernameKey holds the locale-folded username
// used for uniqueness lookups; the displayed casing lives in Username.
type UserModel struct {
	ID                uint   `gorm:"primaryKey"`
	Username          string `gorm:"size:50;not null"`
	UsernameKey       string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash      string `gorm:"size:255;not null"`
	Email             string `gorm:"uniqueIndex;size:255;not null"`
	Name              string `gorm:"size:100"`
	Lastname          string `gorm:"size:100"`
	PhoneNumber       string `gorm:"size:30"`
	Active            bool   `gorm:"not null;default:false"`
	Role              string `gorm:"size:20;not null;index"`
	ProfileImage      string `gorm:"size:255"`
	LastLogin         *int64
	ConfirmationToken *string `gorm:"size:64;index"`
	CreatedAt         int64   `gorm:"autoCreateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
