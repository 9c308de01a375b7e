package model

import "time"

// Task is a to-do item owned by exactly one user. Ownership is set at
// creation and never changes; only the owner may update or delete it.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description,omitempty" gorm:"size:1000"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
