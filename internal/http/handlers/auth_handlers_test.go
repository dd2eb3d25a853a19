package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riyazmahammad/dolphine-cafe/domain"
	"github.com/riyazmahammad/dolphine-cafe/internal/mocks"
)

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newAuthRouter(authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(authSvc)
	r := gin.New()
	auth := r.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
	auth.POST("/verify-otp", h.VerifyOTP)
	auth.POST("/resend-otp", h.ResendOTP)
	auth.POST("/refresh", h.Refresh)
	return r
}

func activeUser() *domain.User {
	return &domain.User{
		ID:        1,
		Name:      "Alice",
		Email:     "a@x.com",
		Role:      domain.RoleEmployee,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

func TestAuthHandlers_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful signup",
			body: SignupRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"},
			setupMocks: func(svc *mocks.MockAuthService) {
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User registered successfully. Please verify your email with the OTP sent.",
		},
		{
			name: "duplicate email",
			body: SignupRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.SignupFunc = func(ctx context.Context, input domain.SignupInput) (string, error) {
					return "", domain.ErrEmailTaken
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "email already exists",
		},
		{
			name:           "name too short rejected before the service runs",
			body:           SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password rejected",
			body:           SignupRequest{Name: "Alice", Email: "a@x.com", Password: "abc"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email rejected",
			body:           SignupRequest{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			r := newAuthRouter(svc)

			w := performJSON(t, r, http.MethodPost, "/auth/signup", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				body := decodeBody(t, w)
				assert.Equal(t, tt.expectedMsg, body["message"])
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedMsg    string
		expectToken    bool
	}{
		{
			name: "successful login returns token and sanitized user",
			body: LoginRequest{Email: "a@x.com", Password: "secret1"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return &domain.AuthResult{
						User:         activeUser(),
						AccessToken:  "access_token",
						RefreshToken: "refresh_token",
						SessionID:    "sess_1",
						ExpiresIn:    900,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Login successful",
			expectToken:    true,
		},
		{
			name:           "unknown account",
			body:           LoginRequest{Email: "ghost@x.com", Password: "secret1"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "user not found",
		},
		{
			name: "unverified account",
			body: LoginRequest{Email: "a@x.com", Password: "secret1"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrAccountNotVerified
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "account not verified, please verify your email first",
		},
		{
			name: "wrong password",
			body: LoginRequest{Email: "a@x.com", Password: "wrong99"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			r := newAuthRouter(svc)

			w := performJSON(t, r, http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, body["message"])
			}
			if tt.expectToken {
				assert.Equal(t, "access_token", body["token"])
				user, ok := body["user"].(map[string]interface{})
				require.True(t, ok, "response must include the user view")
				assert.Equal(t, "a@x.com", user["email"])
				assert.NotContains(t, user, "password")
				assert.NotContains(t, user, "otp")
			}
		})
	}
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedMsg    string
		expectToken    bool
	}{
		{
			name: "successful verification auto-logs-in",
			body: OTPVerifyRequest{Email: "a@x.com", OTP: "123456"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.VerifyOTPFunc = func(ctx context.Context, email, code string) (*domain.AuthResult, error) {
					return &domain.AuthResult{
						User:         activeUser(),
						AccessToken:  "access_token",
						RefreshToken: "refresh_token",
						SessionID:    "sess_1",
						ExpiresIn:    900,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Account verified successfully",
			expectToken:    true,
		},
		{
			name:           "wrong code",
			body:           OTPVerifyRequest{Email: "a@x.com", OTP: "654321"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid otp",
		},
		{
			name: "expired code",
			body: OTPVerifyRequest{Email: "a@x.com", OTP: "123456"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.VerifyOTPFunc = func(ctx context.Context, email, code string) (*domain.AuthResult, error) {
					return nil, domain.ErrOTPExpired
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "otp has expired",
		},
		{
			name:           "non-numeric code rejected by validation",
			body:           OTPVerifyRequest{Email: "a@x.com", OTP: "abc123"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "five digit code rejected by validation",
			body:           OTPVerifyRequest{Email: "a@x.com", OTP: "12345"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			r := newAuthRouter(svc)

			w := performJSON(t, r, http.MethodPost, "/auth/verify-otp", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, body["message"])
			}
			if tt.expectToken {
				assert.Equal(t, "access_token", body["token"])
			}
		})
	}
}

func TestAuthHandlers_ResendOTP(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful resend",
			body: ResendOTPRequest{Email: "a@x.com"},
			setupMocks: func(svc *mocks.MockAuthService) {
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP resent successfully",
		},
		{
			name: "already verified account",
			body: ResendOTPRequest{Email: "a@x.com"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.ResendOTPFunc = func(ctx context.Context, email string) (string, error) {
					return "", domain.ErrAlreadyVerified
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "account is already verified",
		},
		{
			name: "unknown account",
			body: ResendOTPRequest{Email: "ghost@x.com"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.ResendOTPFunc = func(ctx context.Context, email string) (string, error) {
					return "", domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			r := newAuthRouter(svc)

			w := performJSON(t, r, http.MethodPost, "/auth/resend-otp", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				body := decodeBody(t, w)
				assert.Equal(t, tt.expectedMsg, body["message"])
			}
		})
	}
}

func TestAuthHandlers_Refresh(t *testing.T) {
	t.Run("invalid refresh token", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		r := newAuthRouter(svc)

		w := performJSON(t, r, http.MethodPost, "/auth/refresh", RefreshRequest{RefreshToken: "bogus"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid refresh token rotates the access token", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.RefreshTokenFunc = func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
			return &domain.AuthResult{
				User:        activeUser(),
				AccessToken: "fresh_access",
				SessionID:   "sess_1",
				ExpiresIn:   900,
			}, nil
		}
		r := newAuthRouter(svc)

		w := performJSON(t, r, http.MethodPost, "/auth/refresh", RefreshRequest{RefreshToken: "good"})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "fresh_access", body["token"])
	})
}
