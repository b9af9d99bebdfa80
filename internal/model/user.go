package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username             string    `gorm:"size:100;unique;not null" json:"username"`
	Email                string    `gorm:"size:100" json:"email"`
	Password             string    `gorm:"size:100;not null" json:"-"`
	FullName             string    `gorm:"size:100" json:"fullName"`
	Role                 UserRole  `gorm:"type:enum('user','admin');default:'user'" json:"role"`
	ProfileImage         string    `gorm:"size:255" json:"profileImage"`
	NotificationSettings string    `gorm:"type:text" json:"notificationSettings,omitempty"`
	AppearanceSettings   string    `gorm:"type:text" json:"appearanceSettings,omitempty"`
	PrivacySettings      string    `gorm:"type:text" json:"privacySettings,omitempty"`
	Disabled             bool      `gorm:"default:false" json:"disabled"`
	LastLogin            time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastActive           time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastActive"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
