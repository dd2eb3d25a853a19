package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Activate marks the user active and clears the OTP columns in a single
	// conditional update keyed on the current code. Returns ErrOTPInvalid
	// when the code no longer matches (already consumed or replaced).
	Activate(ctx context.Context, userID uint, code string) error
	// RefreshOTP replaces the pending code and expiry in a single conditional
	// update that only applies while the account is still inactive. Returns
	// ErrAlreadyVerified when a concurrent verification won.
	RefreshOTP(ctx context.Context, userID uint, code string, expiry time.Time) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService defines the account activation and login workflow
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyOTP(ctx context.Context, email, code string) (*AuthResult, error)
	ResendOTP(ctx context.Context, email string) (string, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Profile(ctx context.Context, userID uint) (*User, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role string, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, role string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines outbound mail operations. Delivery is
// best-effort from the caller's perspective.
type NotificationService interface {
	SendOTPEmail(to, code string) error
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
