package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"waypath-be/internal/common"
	"waypath-be/internal/entities"
	"waypath-be/internal/models"
	"waypath-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.Profile, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// dummyHash is a valid bcrypt hash of an unrelated input. Login runs a
// compare against it when the email is unknown so that leg costs the same as
// a real verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates a new user account. Email and username are normalized
// before the uniqueness checks; email is always checked first so a request
// clashing on both reports the email conflict. The pre-checks only exist for
// friendly errors — the database constraints are the actual guarantee, and a
// constraint violation at insert surfaces as the same duplicate error.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	email := normalizeEmail(req.Email)
	username := normalizeUsername(req.Username)

	taken, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return common.ErrDuplicateEmail
	}

	if username != nil {
		taken, err := s.userRepo.UsernameExists(ctx, *username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return common.ErrDuplicateUsername
		}
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.userRepo.Create(ctx, &entities.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	return err
}

// Login verifies credentials and returns the user's profile. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.Profile, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Burn a compare so this leg takes as long as a real one.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), prehash(req.Password))
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), prehash(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return &models.Profile{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeUsername trims and lowercases; an absent or blank username is nil.
func normalizeUsername(username *string) *string {
	if username == nil {
		return nil
	}
	u := strings.ToLower(strings.TrimSpace(*username))
	if u == "" {
		return nil
	}
	return &u
}

// prehash folds the password through SHA-256 before bcrypt. bcrypt silently
// ignores input past 72 bytes; the fixed-size digest removes that ceiling so
// long passphrases are verified in full.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.RawStdEncoding.EncodeToString(sum[:]))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
