package model

type JournalEntry struct {
	BaseModel
	UserID  uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Mood    string `gorm:"size:50" json:"mood"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
