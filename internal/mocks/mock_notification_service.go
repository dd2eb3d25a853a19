package mocks

import "github.com/riyazmahammad/dolphine-cafe/domain"

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendOTPEmailFunc func(to, code string) error

	// SentEmails records every delivered (to, code) pair for assertions.
	SentEmails []SentOTPEmail
}

// SentOTPEmail is one recorded delivery
type SentOTPEmail struct {
	To   string
	Code string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendOTPEmail sends a verification code email
func (m *MockNotificationService) SendOTPEmail(to, code string) error {
	if m.SendOTPEmailFunc != nil {
		if err := m.SendOTPEmailFunc(to, code); err != nil {
			return err
		}
	}
	m.SentEmails = append(m.SentEmails, SentOTPEmail{To: to, Code: code})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
