package controller

import (
	"mindmate_backend/pkg/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSubmitQuizMalformedAnswersLoggedAndRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = prev }()

	c := NewQuizController(nil, nil)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	body := `{"quizId":1,"answers":[{"questionId":"","optionId":"a"}]}`
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/quiz-results", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	c.SubmitQuiz(ctx)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	entries := logs.FilterMessage("rejecting malformed quiz submission").All()
	if len(entries) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(entries))
	}
}
