package model

// AdminStats is the headline figures block on the admin dashboard.
type AdminStats struct {
	TotalUsers     int64  `json:"totalUsers"`
	ActiveUsers    int64  `json:"activeUsers"`
	MoodEntries    int64  `json:"moodEntries"`
	JournalEntries int64  `json:"journalEntries"`
	UserChange     string `json:"userChange"`
	ActiveChange   string `json:"activeChange"`
	MoodChange     string `json:"moodChange"`
	JournalChange  string `json:"journalChange"`
}

type MoodBucket struct {
	Mood       string `json:"mood"`
	Count      int64  `json:"count"`
	Percentage int    `json:"percentage"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

type MoodAnalytics struct {
	Distribution []MoodBucket `json:"distribution"`
	Trends       []TrendPoint `json:"trends"`
}

type ActivityPoint struct {
	Date        string `json:"date"`
	ActiveUsers int64  `json:"activeUsers"`
}

type UserActivity struct {
	Daily []ActivityPoint `json:"daily"`
}
