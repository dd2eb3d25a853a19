package mocks

import (
	"context"

	"github.com/riyazmahammad/dolphine-cafe/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignupFunc       func(ctx context.Context, input domain.SignupInput) (string, error)
	LoginFunc        func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	VerifyOTPFunc    func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	ResendOTPFunc    func(ctx context.Context, email string) (string, error)
	RefreshTokenFunc func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc       func(ctx context.Context, sessionID string) error
	ProfileFunc      func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Signup registers a new account
func (m *MockAuthService) Signup(ctx context.Context, input domain.SignupInput) (string, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, input)
	}
	// Default behavior: success
	return "User registered successfully. Please verify your email with the OTP sent.", nil
}

// Login authenticates an account
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// VerifyOTP verifies a pending code
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	// Default behavior: invalid
	return nil, domain.ErrOTPInvalid
}

// ResendOTP issues a fresh code
func (m *MockAuthService) ResendOTP(ctx context.Context, email string) (string, error) {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	// Default behavior: success
	return "OTP resent successfully", nil
}

// RefreshToken rotates the access token
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Logout revokes a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// Profile loads the account for an id
func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
