package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	AssignedTo  *uint  `gorm:"index"`
	CreatedBy   uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
