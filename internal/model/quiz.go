package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	LikertScale    QuestionType = "likert-scale"
	OpenEnded      QuestionType = "open-ended"
)

// Option is a selectable answer choice. Value is normalized to a number once,
// when the quiz is ingested; scoring never coerces.
type Option struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	Value   float64 `json:"value"`
	Insight string  `json:"insight,omitempty"`
}

// UnmarshalJSON accepts the option value either as a JSON number or as a
// numeric string. Anything else is rejected here so downstream code can rely
// on Value being a plain number.
func (o *Option) UnmarshalJSON(data []byte) error {
	type rawOption struct {
		ID      string          `json:"id"`
		Text    string          `json:"text"`
		Value   json.RawMessage `json:"value"`
		Insight string          `json:"insight"`
	}

	var raw rawOption
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.ID = raw.ID
	o.Text = raw.Text
	o.Insight = raw.Insight
	o.Value = 0

	if len(raw.Value) == 0 || string(raw.Value) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(raw.Value, &num); err == nil {
		o.Value = num
		return nil
	}

	var str string
	if err := json.Unmarshal(raw.Value, &str); err == nil {
		num, convErr := strconv.ParseFloat(str, 64)
		if convErr != nil {
			return fmt.Errorf("option %q: value %q is not numeric", raw.ID, str)
		}
		o.Value = num
		return nil
	}

	return fmt.Errorf("option %q: value must be a number", raw.ID)
}

type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Category string       `json:"category"`
	Options  []Option     `json:"options,omitempty"`
}

// QuestionList is stored as a JSON column.
type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *QuestionList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Validate enforces the structural invariants the scoring engine relies on:
// known question types, non-empty question ids unique within the quiz, and
// option ids unique within their question.
func (l QuestionList) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("quiz must contain at least one question")
	}

	seen := make(map[string]bool, len(l))
	for i, q := range l {
		if q.ID == "" {
			return fmt.Errorf("question %d: missing id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seen[q.ID] = true

		if q.Text == "" {
			return fmt.Errorf("question %q: missing text", q.ID)
		}

		switch q.Type {
		case MultipleChoice, LikertScale, OpenEnded:
		default:
			return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
		}

		optSeen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt.ID == "" {
				return fmt.Errorf("question %q: option with missing id", q.ID)
			}
			if optSeen[opt.ID] {
				return fmt.Errorf("question %q: duplicate option id %q", q.ID, opt.ID)
			}
			optSeen[opt.ID] = true
		}
	}

	return nil
}

// Quiz is immutable once created except for admin deletion.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Type        string       `gorm:"size:100;index;not null" json:"type"`
	Questions   QuestionList `gorm:"type:json;not null" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}
