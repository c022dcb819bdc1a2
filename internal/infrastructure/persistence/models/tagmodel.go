package models

// TagModel persists article tags. NameKey holds the locale-folded name
// used for uniqueness lookups.
type TagModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	NameKey   string `gorm:"uniqueIndex;size:100;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}
