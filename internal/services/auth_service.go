// Package services contains the business logic of the application
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/crisisdesk/backend/internal/apperrors"
	"github.com/crisisdesk/backend/internal/auth"
	"github.com/crisisdesk/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor used to hash passwords
const bcryptCost = 10

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// The store's unique email index is the actual uniqueness guard: the
	// conflict error is returned when another record already holds the email.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email.
	//
	// If no user with such email exists, the not-found error is returned
	// together with a "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together
	// with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// authService implements registration, login and token issuance
type authService struct {
	userRepo UserRepository
	tokens   *auth.TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokens *auth.TokenService, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new user account. No token is issued: login is a
// separate step.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return apperrors.Validation("name, email, password, and role are required")
	}

	if !req.Role.Valid() {
		return apperrors.Validation("invalid role: must be one of user, admin, emergency_responder")
	}

	// Friendly pre-check; the unique index on users.email resolves the race
	// when two registrations for the same email interleave.
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrConflict
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         req.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.Int64("userId", user.ID), zap.String("role", string(user.Role)))
	return nil
}

// Login authenticates a user and mints a session token. Unknown email and
// wrong password produce the same generic error so responses cannot be used
// to enumerate accounts.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:   token,
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
		Message: "Login successful",
	}, nil
}
