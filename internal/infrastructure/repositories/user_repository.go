package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/riyazmahammad/dolphine-cafe/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint       `gorm:"primaryKey"`
	Name         string     `gorm:"size:100"`
	Email        string     `gorm:"uniqueIndex;size:255"`
	PasswordHash string     `gorm:"column:password"`
	Role         string     `gorm:"size:64;default:employee"`
	Department   string     `gorm:"size:128"`
	Phone        string     `gorm:"size:32"`
	IsActive     bool       `gorm:"index"`
	OTP          *string    `gorm:"column:otp;size:6"`
	OTPExpiry    *time.Time `gorm:"column:otp_expiry"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// ExistsByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Activate implements domain.UserRepository. The WHERE clause keys on the
// current code so two concurrent verifications cannot both consume it.
func (r *UserRepositoryImpl) Activate(ctx context.Context, userID uint, code string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND otp = ?", userID, code).
		Updates(map[string]interface{}{
			"is_active":  true,
			"otp":        nil,
			"otp_expiry": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOTPInvalid
	}
	return nil
}

// RefreshOTP implements domain.UserRepository. The update only applies while
// the account is still inactive, so a resend racing a successful
// verification loses cleanly.
func (r *UserRepositoryImpl) RefreshOTP(ctx context.Context, userID uint, code string, expiry time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND is_active = ?", userID, false).
		Updates(map[string]interface{}{
			"otp":        code,
			"otp_expiry": expiry,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAlreadyVerified
	}
	return nil
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Department:   user.Department,
		Phone:        user.Phone,
		IsActive:     user.IsActive,
		OTP:          user.OTP,
		OTPExpiry:    user.OTPExpiry,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         dbUser.Role,
		Department:   dbUser.Department,
		Phone:        dbUser.Phone,
		IsActive:     dbUser.IsActive,
		OTP:          dbUser.OTP,
		OTPExpiry:    dbUser.OTPExpiry,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
