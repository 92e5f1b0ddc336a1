package services

import (
	"fmt"

	"adboard_backend/internal/auth"
	"adboard_backend/internal/logger"
	"adboard_backend/internal/models"
	"adboard_backend/internal/notifier"
	"adboard_backend/internal/repositories"
	"adboard_backend/internal/services/dto"
	"adboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService

	// operator channel for "new registration, verify me" pings
	notify       notifier.Notifier
	notifyTarget string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenService,
	notify notifier.Notifier,
	notifyTarget string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokens:       tokens,
		notify:       notify,
		notifyTarget: notifyTarget,
	}
}

// Register creates an inactive user with the default role. Input is already
// validated at the handler; only the uniqueness check and hashing live here.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleUser,
		IsActive:     false,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.DatabaseError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	if s.notifyTarget != "" {
		notifier.Send(s.notify, s.notifyTarget,
			fmt.Sprintf("New user registered: %s. Activate with /verify %s", user.Email, user.Email))
	}

	return nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller. Login does NOT check
// IsActive: an inactive user can hold a token but the activation gate stops
// them at every protected route.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{Token: token}, nil
}
