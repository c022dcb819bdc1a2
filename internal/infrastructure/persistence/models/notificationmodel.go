package models

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	Recipient uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	Type      string `gorm:"size:30;not null;index"`
	Read      bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
