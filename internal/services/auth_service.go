package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/riyazmahammad/dolphine-cafe/domain"
)

// AuthConfig carries the engine's timing knobs
type AuthConfig struct {
	OTPTTL    time.Duration
	AccessTTL time.Duration
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	notifySvc   domain.NotificationService
	config      AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notifySvc domain.NotificationService,
	config AuthConfig,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		notifySvc:   notifySvc,
		config:      config,
	}
}

// Signup implements domain.AuthService. The user row is committed before the
// OTP mail goes out; a mail failure is logged but does not fail the signup.
func (s *AuthServiceImpl) Signup(ctx context.Context, input domain.SignupInput) (string, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return "", domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := GenerateOTP()
	if err != nil {
		return "", err
	}
	expiry := time.Now().Add(s.config.OTPTTL)

	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Department:   input.Department,
		Phone:        input.Phone,
		IsActive:     false,
		OTP:          &code,
		OTPExpiry:    &expiry,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	if err := s.notifySvc.SendOTPEmail(user.Email, code); err != nil {
		log.Printf("OTP_EMAIL_FAILED: email=%s error=%v", user.Email, err)
	}

	return "User registered successfully. Please verify your email with the OTP sent.", nil
}

// Login implements domain.AuthService. Read-only on the user row.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrAccountNotVerified
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// VerifyOTP implements domain.AuthService. The expiry check runs after the
// match check so an expired-but-correct code reports expiry, not mismatch,
// and the code stays on file for a later resend. Activation is a single
// conditional update, so the code is consumed exactly once.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !user.HasPendingOTP() || *user.OTP != code {
		return nil, domain.ErrOTPInvalid
	}

	if !user.OTPExpiry.After(time.Now()) {
		return nil, domain.ErrOTPExpired
	}

	if err := s.userRepo.Activate(ctx, user.ID, code); err != nil {
		return nil, err
	}

	user.IsActive = true
	user.OTP = nil
	user.OTPExpiry = nil

	log.Printf("ACCOUNT_VERIFIED: user_id=%d email=%s", user.ID, user.Email)

	// Auto-login on OTP proof alone; no password re-check on this path.
	return s.issueTokens(ctx, user)
}

// ResendOTP implements domain.AuthService. The replacement is committed
// before the mail goes out, and the old code is overwritten, never kept.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if user.IsActive {
		return "", domain.ErrAlreadyVerified
	}

	code, err := GenerateOTP()
	if err != nil {
		return "", err
	}
	expiry := time.Now().Add(s.config.OTPTTL)

	if err := s.userRepo.RefreshOTP(ctx, user.ID, code, expiry); err != nil {
		return "", err
	}

	if err := s.notifySvc.SendOTPEmail(user.Email, code); err != nil {
		log.Printf("OTP_EMAIL_FAILED: email=%s error=%v", user.Email, err)
	}

	return "OTP resent successfully", nil
}

// RefreshToken implements domain.AuthService
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.config.AccessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// issueTokens creates a session and mints the access/refresh token pair for
// an account that is active (or was just activated).
func (s *AuthServiceImpl) issueTokens(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	session := &domain.Session{
		ID:        "sess_" + uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.config.AccessTTL.Seconds()),
	}, nil
}
