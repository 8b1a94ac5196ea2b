package model

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Username       string         `json:"username" gorm:"uniqueIndex;size:24;not null"`
	PasswordHash   string         `json:"-" gorm:"size:255"` // 社交账号为空
	PhoneE164      string         `json:"phone_e164" gorm:"size:16"`
	PresetText     string         `json:"preset_text" gorm:"type:text"`
	IsAdmin        bool           `json:"is_admin" gorm:"not null"`
	IsActive       bool           `json:"is_active" gorm:"not null"`
	CreatedAt      *time.Time     `json:"created_at"`
	LastLogin      *time.Time     `json:"last_login"`
	Email          string         `json:"email" gorm:"index;size:255"`
	FullName       string         `json:"full_name" gorm:"size:255"`
	ProfilePicture string         `json:"profile_picture" gorm:"size:500"`
	SocialProvider *string        `json:"social_provider" gorm:"size:32;uniqueIndex:idx_users_social"`
	SocialID       *string        `json:"social_id" gorm:"size:255;uniqueIndex:idx_users_social"`
	SocialData     datatypes.JSON `json:"-"`
}

// HasPassword 是否设置了本地密码
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// IsSocial 是否绑定了社交账号
func (u *User) IsSocial() bool {
	return u.SocialProvider != nil && *u.SocialProvider != ""
}
