package service

import (
	"mindmate_backend/internal/model"
	"reflect"
	"testing"
)

func twoQuestionQuiz() []model.Question {
	return []model.Question{
		{
			ID:   "q1",
			Text: "How often do you feel overwhelmed?",
			Type: model.MultipleChoice,
			Options: []model.Option{
				{ID: "a", Text: "Often", Value: 1, Insight: "Consider a daily wind-down routine."},
				{ID: "b", Text: "Rarely", Value: 3},
			},
		},
		{
			ID:   "q2",
			Text: "How well do you sleep?",
			Type: model.LikertScale,
			Options: []model.Option{
				{ID: "c", Text: "Poorly", Value: 2, Insight: "Try keeping a consistent bedtime."},
				{ID: "d", Text: "Well", Value: 5},
			},
		},
	}
}

func TestScoreSubmissionBestAnswers(t *testing.T) {
	score, insights := ScoreSubmission(twoQuestionQuiz(), []model.Answer{
		{QuestionID: "q1", OptionID: "b"},
		{QuestionID: "q2", OptionID: "d"},
	})

	if score.Total != 8 {
		t.Errorf("total = %v, want 8", score.Total)
	}
	if score.Max != 8 {
		t.Errorf("max = %v, want 8", score.Max)
	}
	if score.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", score.Percentage)
	}
	if score.Level != "Excellent" {
		t.Errorf("level = %q, want Excellent", score.Level)
	}
	if len(insights) != 0 {
		t.Errorf("insights = %v, want none (best options carry no insight)", insights)
	}
}

func TestScoreSubmissionLowAnswers(t *testing.T) {
	score, insights := ScoreSubmission(twoQuestionQuiz(), []model.Answer{
		{QuestionID: "q1", OptionID: "a"},
		{QuestionID: "q2", OptionID: "c"},
	})

	if score.Total != 3 {
		t.Errorf("total = %v, want 3", score.Total)
	}
	// 3/8 = 37.5, rounds to 38
	if score.Percentage != 38 {
		t.Errorf("percentage = %d, want 38", score.Percentage)
	}
	if score.Level != "Below Average" {
		t.Errorf("level = %q, want Below Average", score.Level)
	}
	if len(insights) != 2 {
		t.Fatalf("got %d insights, want 2", len(insights))
	}
	if insights[0].QuestionID != "q1" || insights[1].QuestionID != "q2" {
		t.Errorf("insights out of submission order: %v", insights)
	}
	if insights[0].Question != "How often do you feel overwhelmed?" {
		t.Errorf("insight question text = %q", insights[0].Question)
	}
}

func TestScoreSubmissionSkipsUnmatchedReferences(t *testing.T) {
	score, insights := ScoreSubmission(twoQuestionQuiz(), []model.Answer{
		{QuestionID: "nope", OptionID: "a"},
		{QuestionID: "q1", OptionID: "zzz"},
		{QuestionID: "q2", OptionID: "d"},
	})

	if score.Total != 5 {
		t.Errorf("total = %v, want 5 (only the q2 answer counts)", score.Total)
	}
	if score.Max != 8 {
		t.Errorf("max = %v, want 8 (unmatched answers never shrink the denominator)", score.Max)
	}
	if len(insights) != 0 {
		t.Errorf("unexpected insights %v", insights)
	}
}

func TestScoreSubmissionInsightsFollowSubmissionOrder(t *testing.T) {
	_, insights := ScoreSubmission(twoQuestionQuiz(), []model.Answer{
		{QuestionID: "q2", OptionID: "c"},
		{QuestionID: "q1", OptionID: "a"},
	})

	if len(insights) != 2 {
		t.Fatalf("got %d insights, want 2", len(insights))
	}
	if insights[0].QuestionID != "q2" || insights[1].QuestionID != "q1" {
		t.Errorf("insights should keep submission order, got %v", insights)
	}
}

func TestScoreSubmissionNoOptionsAnywhere(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Text: "Free-form reflection", Type: model.OpenEnded},
		{ID: "q2", Text: "Another reflection", Type: model.OpenEnded},
	}

	score, _ := ScoreSubmission(questions, []model.Answer{
		{QuestionID: "q1", OptionID: "a"},
	})

	if score.Max != 0 {
		t.Errorf("max = %v, want 0", score.Max)
	}
	if score.Percentage != 0 {
		t.Errorf("percentage = %d, want 0 (never NaN)", score.Percentage)
	}
	if score.Level != "Poor" {
		t.Errorf("level = %q, want Poor", score.Level)
	}
}

func TestScoreSubmissionEmptyAnswers(t *testing.T) {
	score, insights := ScoreSubmission(twoQuestionQuiz(), nil)

	if score.Total != 0 || score.Percentage != 0 {
		t.Errorf("empty submission scored %v", score)
	}
	if score.Max != 8 {
		t.Errorf("max = %v, want 8", score.Max)
	}
	if len(insights) != 0 {
		t.Errorf("unexpected insights %v", insights)
	}
}

func TestScoreSubmissionIsPure(t *testing.T) {
	questions := twoQuestionQuiz()
	answers := []model.Answer{
		{QuestionID: "q1", OptionID: "a"},
		{QuestionID: "q2", OptionID: "d"},
	}

	first, firstInsights := ScoreSubmission(questions, answers)
	second, secondInsights := ScoreSubmission(questions, answers)

	if first != second {
		t.Errorf("scores differ across identical calls: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(firstInsights, secondInsights) {
		t.Errorf("insights differ across identical calls")
	}
	if !reflect.DeepEqual(questions, twoQuestionQuiz()) {
		t.Errorf("questions were mutated by scoring")
	}
}

func TestMaxPossibleScoreIgnoresOptionlessQuestions(t *testing.T) {
	questions := twoQuestionQuiz()
	questions = append(questions, model.Question{ID: "q3", Text: "Reflection", Type: model.OpenEnded})

	if got := MaxPossibleScore(questions); got != 8 {
		t.Errorf("max = %v, want 8", got)
	}
}

func TestLevelForPercentage(t *testing.T) {
	cases := []struct {
		percentage int
		want       string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Average"},
		{40, "Average"},
		{39, "Below Average"},
		{20, "Below Average"},
		{19, "Poor"},
		{0, "Poor"},
	}

	for _, tc := range cases {
		if got := LevelForPercentage(tc.percentage); got != tc.want {
			t.Errorf("LevelForPercentage(%d) = %q, want %q", tc.percentage, got, tc.want)
		}
	}
}

func TestValidateAnswers(t *testing.T) {
	ok := []model.Answer{{QuestionID: "q1", OptionID: "a"}}
	if err := ValidateAnswers(ok); err != nil {
		t.Errorf("valid answers rejected: %v", err)
	}

	if err := ValidateAnswers([]model.Answer{{QuestionID: "", OptionID: "a"}}); err == nil {
		t.Error("missing questionId should be rejected")
	}
	if err := ValidateAnswers([]model.Answer{{QuestionID: "q1", OptionID: ""}}); err == nil {
		t.Error("missing optionId should be rejected")
	}
	if err := ValidateAnswers(nil); err != nil {
		t.Errorf("empty answer list should pass shape validation: %v", err)
	}
}
