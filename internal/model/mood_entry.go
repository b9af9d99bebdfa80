package model

// MoodEntry is a single mood check-in.
type MoodEntry struct {
	BaseModel
	UserID uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Mood   string `gorm:"size:50;not null" json:"mood"`
	Note   string `gorm:"type:text" json:"note"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
