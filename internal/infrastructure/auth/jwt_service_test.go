package auth

import (
	"testing"
	"time"

	"github.com/riyazmahammad/dolphine-cafe/domain"
)

func newTestJWTService(accessTTL, refreshTTL time.Duration) domain.TokenService {
	return NewJWTService("test-secret", "dolphine-cafe-test", accessTTL, refreshTTL)
}

func TestJWTServiceImpl_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(42, domain.RoleEmployee, "sess_abc")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != domain.RoleEmployee {
		t.Errorf("role = %q", claims.Role)
	}
	if claims.SessionID != "sess_abc" {
		t.Errorf("session id = %q", claims.SessionID)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("exp must be after iat")
	}
}

func TestJWTServiceImpl_TokensAreUnique(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, time.Hour)

	a, err := svc.GenerateAccessToken(1, domain.RoleEmployee, "sess_1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	b, err := svc.GenerateAccessToken(1, domain.RoleEmployee, "sess_1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if a == b {
		t.Error("two tokens for the same identity must differ (jti)")
	}
}

func TestJWTServiceImpl_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(1, domain.RoleEmployee, "sess_1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token + "x"); err != domain.ErrTokenInvalid {
		t.Errorf("tampered token: got %v, want %v", err, domain.ErrTokenInvalid)
	}

	if _, err := svc.ValidateAccessToken("not-a-jwt"); err != domain.ErrTokenInvalid {
		t.Errorf("garbage token: got %v, want %v", err, domain.ErrTokenInvalid)
	}
}

func TestJWTServiceImpl_RejectsWrongSecret(t *testing.T) {
	minting := newTestJWTService(15*time.Minute, time.Hour)
	verifying := NewJWTService("other-secret", "dolphine-cafe-test", 15*time.Minute, time.Hour)

	token, err := minting.GenerateAccessToken(1, domain.RoleEmployee, "sess_1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := verifying.ValidateAccessToken(token); err != domain.ErrTokenInvalid {
		t.Errorf("wrong secret: got %v, want %v", err, domain.ErrTokenInvalid)
	}
}
