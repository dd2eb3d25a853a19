package mocks

import (
	"context"
	"time"

	"github.com/riyazmahammad/dolphine-cafe/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ActivateFunc      func(ctx context.Context, userID uint, code string) error
	RefreshOTPFunc    func(ctx context.Context, userID uint, code string, expiry time.Time) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// ExistsByEmail reports whether an account exists for the email
func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	// Default behavior: not taken
	return false, nil
}

// Activate marks the user active and clears the OTP columns
func (m *MockUserRepository) Activate(ctx context.Context, userID uint, code string) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, userID, code)
	}
	// Default behavior: success
	return nil
}

// RefreshOTP replaces the pending code and expiry
func (m *MockUserRepository) RefreshOTP(ctx context.Context, userID uint, code string, expiry time.Time) error {
	if m.RefreshOTPFunc != nil {
		return m.RefreshOTPFunc(ctx, userID, code, expiry)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
