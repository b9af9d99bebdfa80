package service

import (
	"fmt"
	"math"
	"mindmate_backend/internal/model"
)

// Level thresholds, tested in descending order with percentage >= value.
var levelLadder = []struct {
	threshold int
	label     string
}{
	{80, "Excellent"},
	{60, "Good"},
	{40, "Average"},
	{20, "Below Average"},
}

const levelPoor = "Poor"

func LevelForPercentage(percentage int) string {
	for _, step := range levelLadder {
		if percentage >= step.threshold {
			return step.label
		}
	}
	return levelPoor
}

// ValidateAnswers checks the shape of a submitted answer payload. A failure
// here rejects the submission before scoring; the engine itself stays
// tolerant of answers that reference unknown questions or options.
func ValidateAnswers(answers []model.Answer) error {
	for i, a := range answers {
		if a.QuestionID == "" {
			return fmt.Errorf("answer %d: missing questionId", i)
		}
		if a.OptionID == "" {
			return fmt.Errorf("answer %d: missing optionId", i)
		}
	}
	return nil
}

// MaxPossibleScore sums, over all questions, the highest option value within
// each question. Questions without options contribute nothing.
func MaxPossibleScore(questions []model.Question) float64 {
	var max float64
	for _, q := range questions {
		if len(q.Options) == 0 {
			continue
		}
		best := q.Options[0].Value
		for _, opt := range q.Options[1:] {
			if opt.Value > best {
				best = opt.Value
			}
		}
		max += best
	}
	return max
}

// ScoreSubmission turns a quiz definition and a submitted answer sequence
// into a Score and the per-question insights. It is a pure function: inputs
// are never mutated and identical inputs produce identical outputs.
//
// Answers referencing a question or option that does not exist in the quiz
// are skipped without error. Insights keep the order answers were submitted
// in, not the quiz's question order. When no question carries any options,
// the maximum is 0 and the percentage is defined as 0 rather than NaN.
func ScoreSubmission(questions []model.Question, answers []model.Answer) (model.Score, []model.Insight) {
	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	var total float64
	var insights []model.Insight

	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			continue
		}

		var selected *model.Option
		for i := range question.Options {
			if question.Options[i].ID == answer.OptionID {
				selected = &question.Options[i]
				break
			}
		}
		if selected == nil {
			continue
		}

		total += selected.Value

		if selected.Insight != "" {
			insights = append(insights, model.Insight{
				QuestionID: question.ID,
				Question:   question.Text,
				Insight:    selected.Insight,
			})
		}
	}

	max := MaxPossibleScore(questions)

	percentage := 0
	if max > 0 {
		percentage = int(math.Round(total / max * 100))
	}

	return model.Score{
		Total:      total,
		Max:        max,
		Percentage: percentage,
		Level:      LevelForPercentage(percentage),
	}, insights
}
