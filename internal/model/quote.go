package model

import "time"

// Quote is a daily motivational quote shown on the user dashboard.
type Quote struct {
	BaseModel
	Text            string    `gorm:"type:text;not null" json:"text"`
	Author          string    `gorm:"size:100" json:"author"`
	IsEnabled       bool      `gorm:"default:true" json:"isEnabled"`
	IsCurrentlyUsed bool      `gorm:"default:false" json:"isCurrentlyUsed"`
	LastUsedAt      time.Time `gorm:"autoCreateTime" json:"lastUsedAt"`
}

func (Quote) TableName() string {
	return "quotes"
}
