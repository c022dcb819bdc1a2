package models

// ArticleModel persists knowledge-base articles. CategoryID is nullable
// so that deleting a category can detach its articles.
type ArticleModel struct {
	ID         uint   `gorm:"primaryKey"`
	AuthorID   uint   `gorm:"not null;index"`
	Title      string `gorm:"size:200;not null"`
	Content    string `gorm:"type:text;not null"`
	CategoryID *uint  `gorm:"index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

// ArticleTagModel joins articles to tags without gorm associations.
type ArticleTagModel struct {
	ArticleID uint `gorm:"primaryKey"`
	TagID     uint `gorm:"primaryKey;index"`
}

func (ArticleTagModel) TableName() string {
	return "article_tags"
}
