// Package service contains the business logic of the blog service.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/Jeff114514/jeff-blog/internal/models"
	"github.com/Jeff114514/jeff-blog/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// Validation failures, reported before any store access.
	ErrUsernameLength = errors.New("username must be between 3 and 20 characters")
	ErrInvalidEmail   = errors.New("email format is invalid")
	ErrPasswordLength = errors.New("password must be between 6 and 20 characters")

	ErrUsernameTaken   = errors.New("username already exists")
	ErrEmailRegistered = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserDisabled    = errors.New("account disabled")
	ErrWrongPassword   = errors.New("incorrect password")
)

// LoginResponse carries the issued token and the public profile fields.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// AuthService orchestrates registration and login against the user
// store and the token service.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) error {
	if n := utf8.RuneCountInString(username); n < 3 || n > 20 {
		return ErrUsernameLength
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if n := utf8.RuneCountInString(password); n < 6 || n > 20 {
		return ErrPasswordLength
	}

	count, err := s.userRepo.CountByUsername(ctx, username)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	count, err = s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Status:   models.UserEnabled,
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the counts; the
		// unique indexes are the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.classifyDuplicate(ctx, username)
		}
		return err
	}

	return nil
}

// classifyDuplicate decides which unique index a racing insert hit.
func (s *authService) classifyDuplicate(ctx context.Context, username string) error {
	count, err := s.userRepo.CountByUsername(ctx, username)
	if err == nil && count > 0 {
		return ErrUsernameTaken
	}
	return ErrEmailRegistered
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Status == models.UserDisabled {
		return nil, ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Role:     user.Role,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Not even the hash leaves the service.
	user.Password = ""
	return user, nil
}
