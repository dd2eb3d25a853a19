package domain

import "time"

// User represents a cafeteria account
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	Department   string
	Phone        string
	IsActive     bool
	OTP          *string
	OTPExpiry    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPendingOTP reports whether the account still has a verification code
// on file. OTP and OTPExpiry are set and cleared together.
func (u *User) HasPendingOTP() bool {
	return u.OTP != nil && u.OTPExpiry != nil
}

// SignupInput carries the fields accepted at registration
type SignupInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	Phone      string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// Session represents a user session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Account roles
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)
