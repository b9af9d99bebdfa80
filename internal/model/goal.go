package model

import "time"

type Goal struct {
	BaseModel
	UserID      uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	TargetDate  *time.Time `gorm:"type:datetime" json:"targetDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}
