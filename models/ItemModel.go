package models

import "time"

type Item struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Title       string `gorm:"size:250;not null" json:"title"`
	Description string `gorm:"size:5000" json:"description"`
	UserID      uint   `json:"user_id"`
}
