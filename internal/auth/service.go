package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/greenmart/pos/internal/models"
)

var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrEmailTaken     = errors.New("email already registered")
)

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

type TokenPair struct {
	Access  string
	Refresh string
}

type Service struct {
	DB            *gorm.DB
	JWTSecret     []byte
	RefreshSecret []byte
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBadCredentials
		}
		return nil, nil, err
	}

	if !user.IsActive {
		return nil, nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrBadCredentials
	}

	pair, err := s.issue(&user)
	if err != nil {
		return nil, nil, err
	}
	return &user, pair, nil
}

func (s *Service) RegisterUser(ctx context.Context, email, password, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("email and password required")
	}
	if role != RoleAdmin {
		role = RoleCashier
	}

	var existing models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) issue(user *models.User) (*TokenPair, error) {
	access, err := SignAccessToken(user.ID, user.Role, s.JWTSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := SignRefreshToken(user.ID, user.Role, s.RefreshSecret)
	if err != nil {
		return nil, err
	}

	if err := SaveRefreshToken(s.DB, refresh, user.ID); err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Rotate validates a refresh token, revokes it and issues a fresh pair.
func (s *Service) Rotate(raw string) (*TokenPair, string, error) {
	claims, err := ValidateRefresh(raw, s.RefreshSecret, s.DB)
	if err != nil {
		return nil, "", err
	}

	userID := uint(claims["sub"].(float64))
	role, _ := claims["role"].(string)

	if err := RevokeRefreshToken(s.DB, raw); err != nil {
		return nil, "", err
	}

	access, err := SignAccessToken(userID, role, s.JWTSecret)
	if err != nil {
		return nil, "", err
	}
	refresh, err := SignRefreshToken(userID, role, s.RefreshSecret)
	if err != nil {
		return nil, "", err
	}
	if err := SaveRefreshToken(s.DB, refresh, userID); err != nil {
		return nil, "", err
	}

	return &TokenPair{Access: access, Refresh: refresh}, role, nil
}
