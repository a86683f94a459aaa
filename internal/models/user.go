package models

import (
	"time"
)

// User はユーザーモデル
// Password と PasswordConfirmation は保存されず、PasswordDigest のみが永続化される
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null" validate:"notblank,max=50"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null" validate:"notblank,email_format"`
	PasswordDigest string    `json:"-" gorm:"not null"`
	RememberToken  string    `json:"-" gorm:"size:255;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Password             string `json:"-" gorm:"-" validate:"notblank,min=6"`
	PasswordConfirmation string `json:"-" gorm:"-" validate:"notblank,eqfield=Password"`
}
