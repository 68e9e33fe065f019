package models

import "time"

// Article statuses.
const (
	ArticleDraft     = 0
	ArticlePublished = 1
	ArticleRetired   = 2
)

// Article represents a blog post. AuthorID is fixed at creation; only
// the owning author may mutate or soft-delete the row. ViewCount is
// bumped atomically by the read path.
type Article struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Summary   string    `json:"summary" gorm:"size:500"`
	AuthorID  int64     `json:"authorId" gorm:"not null;index"`
	Category  string    `json:"category" gorm:"size:50;index"`
	Tags      string    `json:"tags" gorm:"size:255"` // comma separated
	Status    int       `json:"status" gorm:"not null;default:1;index"`
	ViewCount int       `json:"viewCount" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Deleted   int       `json:"-" gorm:"not null;default:0;index"`
}

// TableName returns the database table name for the Article model.
func (Article) TableName() string {
	return "articles"
}
