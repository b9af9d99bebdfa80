package service

import (
	"errors"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/monitoring"
	"time"

	"gorm.io/gorm"
)

// QuizStore and QuizResultStore are the persistence capabilities the quiz
// service needs. The gorm repositories satisfy them; tests inject in-memory
// doubles.
type QuizStore interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	FindByType(quizType string) ([]model.Quiz, error)
	Delete(id uint) error
}

type QuizResultStore interface {
	Create(result *model.QuizResult) error
	FindByID(id uint) (*model.QuizResult, error)
	FindByUserID(userID uint) ([]model.QuizResult, error)
	FindByQuizID(quizID uint) ([]model.QuizResult, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type QuizService struct {
	Quizzes QuizStore
	Results QuizResultStore
}

func NewQuizService(quizzes QuizStore, results QuizResultStore) *QuizService {
	return &QuizService{Quizzes: quizzes, Results: results}
}

type CreateQuizRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Type        string             `json:"type" binding:"required"`
	Questions   model.QuestionList `json:"questions" binding:"required"`
}

// CreateQuiz validates the question schema once, at ingestion. Scoring later
// assumes the stored questions are well formed.
func (s *QuizService) CreateQuiz(req CreateQuizRequest) (*model.Quiz, error) {
	if err := req.Questions.Validate(); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Questions:   req.Questions,
	}
	if err := s.Quizzes.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes() ([]model.Quiz, error) {
	return s.Quizzes.FindAll()
}

func (s *QuizService) ListQuizzesByType(quizType string) ([]model.Quiz, error) {
	return s.Quizzes.FindByType(quizType)
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.Quizzes.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *QuizService) DeleteQuiz(id uint) error {
	err := s.Quizzes.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	return err
}

// SubmitQuiz scores a submission against the referenced quiz and persists
// the result exactly once. The quiz must exist; everything wrong inside the
// answer sequence degrades to skipped answers.
func (s *QuizService) SubmitQuiz(userID, quizID uint, answers []model.Answer) (*model.QuizResult, error) {
	quiz, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}

	score, insights := ScoreSubmission(quiz.Questions, answers)

	now := time.Now()
	result := &model.QuizResult{
		UserID:      userID,
		QuizID:      quizID,
		Answers:     model.AnswerList(answers),
		Score:       score,
		Insights:    model.InsightList(insights),
		Completed:   true,
		CompletedAt: &now,
	}

	if err := s.Results.Create(result); err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(score.Level).Inc()

	return result, nil
}

func (s *QuizService) GetResult(id uint) (*model.QuizResult, error) {
	result, err := s.Results.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	}
	return result, err
}

func (s *QuizService) ListResultsForUser(userID uint) ([]model.QuizResult, error) {
	return s.Results.FindByUserID(userID)
}

func (s *QuizService) ListResultsForQuiz(quizID uint) ([]model.QuizResult, error) {
	return s.Results.FindByQuizID(quizID)
}

// UpdateResult applies the administrative partial update.
func (s *QuizService) UpdateResult(id uint, fields map[string]interface{}) (*model.QuizResult, error) {
	if _, err := s.GetResult(id); err != nil {
		return nil, err
	}
	if err := s.Results.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.GetResult(id)
}

func (s *QuizService) DeleteResult(id uint) error {
	err := s.Results.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrResultNotFound
	}
	return err
}
