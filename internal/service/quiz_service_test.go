package service

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/util"
	"testing"

	"gorm.io/gorm"
)

type fakeQuizStore struct {
	quizzes map[uint]*model.Quiz
	nextID  uint
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: make(map[uint]*model.Quiz), nextID: 1}
}

func (s *fakeQuizStore) Create(quiz *model.Quiz) error {
	quiz.ID = s.nextID
	s.nextID++
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *fakeQuizStore) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (s *fakeQuizStore) FindAll() ([]model.Quiz, error) {
	out := make([]model.Quiz, 0, len(s.quizzes))
	for _, q := range s.quizzes {
		out = append(out, *q)
	}
	return out, nil
}

func (s *fakeQuizStore) FindByType(quizType string) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range s.quizzes {
		if q.Type == quizType {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (s *fakeQuizStore) Delete(id uint) error {
	if _, ok := s.quizzes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.quizzes, id)
	return nil
}

type fakeResultStore struct {
	results map[uint]*model.QuizResult
	nextID  uint
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{results: make(map[uint]*model.QuizResult), nextID: 1}
}

func (s *fakeResultStore) Create(result *model.QuizResult) error {
	result.ID = s.nextID
	s.nextID++
	s.results[result.ID] = result
	return nil
}

func (s *fakeResultStore) FindByID(id uint) (*model.QuizResult, error) {
	result, ok := s.results[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return result, nil
}

func (s *fakeResultStore) FindByUserID(userID uint) ([]model.QuizResult, error) {
	var out []model.QuizResult
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeResultStore) FindByQuizID(quizID uint) ([]model.QuizResult, error) {
	var out []model.QuizResult
	for _, r := range s.results {
		if r.QuizID == quizID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeResultStore) UpdateFields(id uint, fields map[string]interface{}) error {
	result, ok := s.results[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if completed, ok := fields["completed"].(bool); ok {
		result.Completed = completed
	}
	return nil
}

func (s *fakeResultStore) Delete(id uint) error {
	if _, ok := s.results[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.results, id)
	return nil
}

func newTestQuizService(t *testing.T) (*QuizService, *model.Quiz) {
	t.Helper()
	svc := NewQuizService(newFakeQuizStore(), newFakeResultStore())

	quiz, err := svc.CreateQuiz(CreateQuizRequest{
		Title:     "Stress Check",
		Type:      "stress",
		Questions: model.QuestionList(twoQuestionQuiz()),
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	return svc, quiz
}

func TestCreateQuizRejectsInvalidQuestions(t *testing.T) {
	svc := NewQuizService(newFakeQuizStore(), newFakeResultStore())

	_, err := svc.CreateQuiz(CreateQuizRequest{
		Title: "Broken",
		Type:  "stress",
		Questions: model.QuestionList{
			{ID: "q1", Text: "dup", Type: model.MultipleChoice},
			{ID: "q1", Text: "dup again", Type: model.MultipleChoice},
		},
	})
	if err == nil {
		t.Fatal("duplicate question ids should fail validation")
	}
}

func TestSubmitQuizPersistsScoredResult(t *testing.T) {
	svc, quiz := newTestQuizService(t)

	result, err := svc.SubmitQuiz(7, quiz.ID, []model.Answer{
		{QuestionID: "q1", OptionID: "a"},
		{QuestionID: "q2", OptionID: "c"},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if result.UserID != 7 || result.QuizID != quiz.ID {
		t.Errorf("result attribution wrong: %+v", result)
	}
	if !result.Completed || result.CompletedAt == nil {
		t.Error("result should be marked completed with a timestamp")
	}
	if result.Score.Percentage != 38 || result.Score.Level != "Below Average" {
		t.Errorf("score = %+v", result.Score)
	}
	if len(result.Insights) != 2 {
		t.Errorf("got %d insights, want 2", len(result.Insights))
	}

	stored, err := svc.GetResult(result.ID)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if stored.Score != result.Score {
		t.Errorf("stored score %+v differs from returned %+v", stored.Score, result.Score)
	}
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	svc, _ := newTestQuizService(t)

	_, err := svc.SubmitQuiz(7, 999, []model.Answer{{QuestionID: "q1", OptionID: "a"}})
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestSubmitQuizToleratesGarbageReferences(t *testing.T) {
	svc, quiz := newTestQuizService(t)

	result, err := svc.SubmitQuiz(7, quiz.ID, []model.Answer{
		{QuestionID: "ghost", OptionID: "a"},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if result.Score.Total != 0 || result.Score.Max != 8 {
		t.Errorf("score = %+v, want total 0 max 8", result.Score)
	}
}

func TestListQuizzesByType(t *testing.T) {
	svc, _ := newTestQuizService(t)

	if _, err := svc.CreateQuiz(CreateQuizRequest{
		Title:     "Sleep Check",
		Type:      "sleep",
		Questions: model.QuestionList(twoQuestionQuiz()),
	}); err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	stress, err := svc.ListQuizzesByType("stress")
	if err != nil {
		t.Fatalf("ListQuizzesByType: %v", err)
	}
	if len(stress) != 1 || stress[0].Type != "stress" {
		t.Errorf("stress quizzes = %v", stress)
	}
}

func TestDeleteResult(t *testing.T) {
	svc, quiz := newTestQuizService(t)

	result, err := svc.SubmitQuiz(7, quiz.ID, nil)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if err := svc.DeleteResult(result.ID); err != nil {
		t.Fatalf("DeleteResult: %v", err)
	}
	if err := svc.DeleteResult(result.ID); !errors.Is(err, util.ErrResultNotFound) {
		t.Errorf("second delete err = %v, want ErrResultNotFound", err)
	}
}
