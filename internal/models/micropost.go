package models

import (
	"time"
)

// Micropost は投稿モデル
type Micropost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null" validate:"notblank,max=140"`
	UserID    uint      `json:"user_id" gorm:"not null;index" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// リレーション
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
