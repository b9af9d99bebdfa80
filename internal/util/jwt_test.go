package util

import (
	"mindmate_backend/internal/model"
	"testing"
	"time"
)

const testSecret = "test-secret-0123456789-0123456789"

func testUser() *model.User {
	u := &model.User{
		Username: "casey",
		Role:     model.RoleAdmin,
	}
	u.ID = 42
	return u
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "casey" || claims.Role != model.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "another-secret-that-is-long-enough"); err == nil {
		t.Error("token signed with a different secret should not parse")
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not.a.token", testSecret); err == nil {
		t.Error("garbage token should not parse")
	}
}
