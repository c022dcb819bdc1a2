package models

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "comments"
}
