package models

import "time"

// Comment statuses.
const (
	CommentPending  = 0
	CommentApproved = 1
	CommentRejected = 2
)

// Comment represents a reader comment on an article. ParentID links a
// reply to the comment it answers.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ArticleID int64     `json:"articleId" gorm:"not null;index"`
	UserID    int64     `json:"userId" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	ParentID  *int64    `json:"parentId" gorm:"index"`
	Status    int       `json:"status" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Deleted   int       `json:"-" gorm:"not null;default:0;index"`
}

// TableName returns the database table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}
