package model

import (
	"encoding/json"
	"testing"
)

func TestOptionUnmarshalNumericValue(t *testing.T) {
	var opt Option
	if err := json.Unmarshal([]byte(`{"id":"a","text":"Often","value":2.5}`), &opt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if opt.Value != 2.5 {
		t.Errorf("value = %v, want 2.5", opt.Value)
	}
}

func TestOptionUnmarshalStringValue(t *testing.T) {
	var opt Option
	if err := json.Unmarshal([]byte(`{"id":"a","text":"Often","value":"3"}`), &opt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if opt.Value != 3 {
		t.Errorf("value = %v, want 3 (numeric string normalized at ingestion)", opt.Value)
	}
}

func TestOptionUnmarshalRejectsNonNumericValue(t *testing.T) {
	var opt Option
	if err := json.Unmarshal([]byte(`{"id":"a","value":"high"}`), &opt); err == nil {
		t.Error("non-numeric string value should be rejected")
	}
	if err := json.Unmarshal([]byte(`{"id":"a","value":{"n":1}}`), &opt); err == nil {
		t.Error("object value should be rejected")
	}
}

func TestOptionUnmarshalMissingValueDefaultsToZero(t *testing.T) {
	var opt Option
	if err := json.Unmarshal([]byte(`{"id":"a","text":"n/a"}`), &opt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if opt.Value != 0 {
		t.Errorf("value = %v, want 0", opt.Value)
	}
}

func validQuestions() QuestionList {
	return QuestionList{
		{
			ID:   "q1",
			Text: "How are you?",
			Type: MultipleChoice,
			Options: []Option{
				{ID: "a", Text: "Fine", Value: 1},
				{ID: "b", Text: "Great", Value: 2},
			},
		},
		{ID: "q2", Text: "Reflect freely", Type: OpenEnded},
	}
}

func TestQuestionListValidate(t *testing.T) {
	if err := validQuestions().Validate(); err != nil {
		t.Errorf("valid questions rejected: %v", err)
	}
}

func TestQuestionListValidateFailures(t *testing.T) {
	cases := []struct {
		name      string
		questions QuestionList
	}{
		{"empty list", QuestionList{}},
		{"missing question id", QuestionList{{Text: "x", Type: MultipleChoice}}},
		{"duplicate question id", QuestionList{
			{ID: "q1", Text: "x", Type: MultipleChoice},
			{ID: "q1", Text: "y", Type: MultipleChoice},
		}},
		{"missing text", QuestionList{{ID: "q1", Type: MultipleChoice}}},
		{"unknown type", QuestionList{{ID: "q1", Text: "x", Type: "essay"}}},
		{"missing option id", QuestionList{
			{ID: "q1", Text: "x", Type: MultipleChoice, Options: []Option{{Text: "a"}}},
		}},
		{"duplicate option id", QuestionList{
			{ID: "q1", Text: "x", Type: MultipleChoice, Options: []Option{
				{ID: "a", Text: "one"},
				{ID: "a", Text: "two"},
			}},
		}},
	}

	for _, tc := range cases {
		if err := tc.questions.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestQuestionListRoundTrip(t *testing.T) {
	questions := validQuestions()

	raw, err := questions.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded QuestionList
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Options[1].Value != 2 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestInsightListEmptyStoresAsNull(t *testing.T) {
	var empty InsightList
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != nil {
		t.Errorf("empty insight list stored as %v, want SQL NULL", v)
	}

	full := InsightList{{QuestionID: "q1", Question: "x", Insight: "rest more"}}
	v, err = full.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v == nil {
		t.Error("non-empty insight list must not store as NULL")
	}
}
