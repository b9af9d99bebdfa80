package model

import "time"

// UserStats is a daily usage snapshot appended by the client.
type UserStats struct {
	BaseModel
	UserID              uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	DailyUsage          int       `gorm:"default:0" json:"dailyUsage"`
	MoodEntriesCount    int       `gorm:"default:0" json:"moodEntriesCount"`
	JournalEntriesCount int       `gorm:"default:0" json:"journalEntriesCount"`
	Date                time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"date"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
