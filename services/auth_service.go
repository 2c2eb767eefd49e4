package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/davidthissen1/Nutrify/models"
	"github.com/davidthissen1/Nutrify/utils"

	"gorm.io/gorm"
)

const tokenTTL = 30 * 24 * time.Hour

var (
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

type AuthService struct {
	db            *gorm.DB
	secret        string
	enforceExpiry bool
}

func NewAuthService(db *gorm.DB, secret string, enforceExpiry bool) *AuthService {
	return &AuthService{db: db, secret: secret, enforceExpiry: enforceExpiry}
}

func (s *AuthService) Register(username, email, password string) (uint, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	var existing models.User
	err = s.db.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return 0, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to check existing users: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return user.ID, nil
}

// Login checks credentials and issues a fresh token. Earlier tokens stay
// valid; a user accumulates one row in user_tokens per login.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token := models.UserToken{
		UserID:    user.ID,
		Token:     utils.GenerateToken(user.ID, s.secret),
		ExpiresAt: time.Now().Add(tokenTTL),
	}
	if err := s.db.Create(&token).Error; err != nil {
		return nil, "", fmt.Errorf("failed to store token: %w", err)
	}
	return &user, token.Token, nil
}

// ResolveToken maps a bearer token to its user. Validity is existence of
// the row; expires_at only participates when expiry enforcement is on.
func (s *AuthService) ResolveToken(token string) (*models.User, error) {
	q := s.db.Table("users").
		Select("users.id, users.username, users.email, users.created_at, users.is_active").
		Joins("JOIN user_tokens ON users.id = user_tokens.user_id").
		Where("user_tokens.token = ?", token)
	if s.enforceExpiry {
		q = q.Where("user_tokens.expires_at > ?", time.Now())
	}

	var user models.User
	if err := q.Scan(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	if user.ID == 0 {
		return nil, ErrInvalidToken
	}
	return &user, nil
}

// PurgeExpiredTokens removes rows past their expires_at. Run as periodic
// housekeeping; it does not affect live requests because reads do not
// check expiry unless configured to.
func (s *AuthService) PurgeExpiredTokens() (int64, error) {
	res := s.db.Where("expires_at < ?", time.Now()).Delete(&models.UserToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge expired tokens: %w", res.Error)
	}
	return res.RowsAffected, nil
}
