package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer is a user's selection of one option for one question. Answers may
// reference questions or options that no longer exist in the quiz; the
// scoring engine skips those.
type Answer struct {
	QuestionID string  `json:"questionId"`
	OptionID   string  `json:"optionId"`
	TimeSpent  float64 `json:"timeSpent,omitempty"`
}

type AnswerList []Answer

func (l AnswerList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *AnswerList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Score is the aggregate numeric result of a submission.
type Score struct {
	Total      float64 `json:"total"`
	Max        float64 `json:"max"`
	Percentage int     `json:"percentage"`
	Level      string  `json:"level"`
}

func (s Score) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Score) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Insight is per-question feedback surfaced when the selected option carries
// insight text.
type Insight struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Insight    string `json:"insight"`
}

// InsightList stores as SQL NULL when empty, which is the explicit
// "no insights" marker.
type InsightList []Insight

func (l InsightList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *InsightList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// QuizResult is created exactly once per submission.
// swagger:model QuizResult
type QuizResult struct {
	BaseModel
	Reference   string      `gorm:"size:36;uniqueIndex" json:"reference"`
	UserID      uint        `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	QuizID      uint        `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Answers     AnswerList  `gorm:"type:json;not null" json:"answers"`
	Score       Score       `gorm:"type:json;not null" json:"score"`
	Insights    InsightList `gorm:"type:json" json:"insights,omitempty"`
	Completed   bool        `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

func (r *QuizResult) BeforeCreate(tx *gorm.DB) error {
	if r.Reference == "" {
		r.Reference = uuid.New().String()
	}
	return nil
}
