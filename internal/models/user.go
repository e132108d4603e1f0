// Package models contains data models for the trails service.
package models

// User represents a registered account that can own trails.
type User struct {
	UserID   int64   `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username string  `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email    string  `json:"email" gorm:"size:150;uniqueIndex;not null"`
	Role     string  `json:"role" gorm:"size:50;not null"`
	Trails   []Trail `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
