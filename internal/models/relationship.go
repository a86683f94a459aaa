package models

import (
	"time"
)

// Relationship は follower が followed をフォローしている有向の関係
// (follower_id, followed_id) の組は一意
type Relationship struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"not null;index;uniqueIndex:idx_relationships_pair"`
	FollowedID uint      `json:"followed_id" gorm:"not null;index;uniqueIndex:idx_relationships_pair"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// リレーション
	Follower *User `json:"-" gorm:"foreignKey:FollowerID"`
	Followed *User `json:"-" gorm:"foreignKey:FollowedID"`
}
