// Package models contains data models for the blog service.
package models

import "time"

// User statuses.
const (
	UserDisabled = 0
	UserEnabled  = 1
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered account. The password column holds a
// bcrypt hash and is never serialized. Rows are soft-deleted via the
// deleted flag rather than removed.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:20;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:100;not null"`
	Avatar    string    `json:"avatar" gorm:"size:255"`
	Status    int       `json:"status" gorm:"not null;default:1"`
	Role      string    `json:"role" gorm:"size:16;not null;default:user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Deleted   int       `json:"-" gorm:"not null;default:0;index"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
