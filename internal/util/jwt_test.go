package util_test

import (
	"testing"
	"time"

	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/model"
	"github.com/fredricklemon581-lang/StudentCareerPlanner/internal/util"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "teacher@example.com", Role: model.RoleTeacher}
	user.ID = 42

	token, err := util.GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleTeacher {
		t.Errorf("Role = %s, want teacher", claims.Role)
	}
	if claims.Email != "teacher@example.com" {
		t.Errorf("Email = %s", claims.Email)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "a@b.c", Role: model.RoleStudent}
	user.ID = 1

	token, err := util.GenerateJWT(user, "secret-one", time.Hour)
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	if _, err := util.ParseJWT(token, "secret-two"); err == nil {
		t.Fatal("错误密钥应当解析失败")
	}
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Email: "a@b.c", Role: model.RoleStudent}
	user.ID = 1

	token, err := util.GenerateJWT(user, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	if _, err := util.ParseJWT(token, "test-secret"); err == nil {
		t.Fatal("过期令牌应当解析失败")
	}
}
