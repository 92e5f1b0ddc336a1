package services

import (
	"adboard_backend/internal/auth"
	"adboard_backend/internal/logger"
	"adboard_backend/internal/models"
	"adboard_backend/internal/repositories"
	"adboard_backend/internal/services/dto"
	"adboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	List(db *gorm.DB) ([]models.User, error)
	Update(db *gorm.DB, actor *models.User, userID string, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(db *gorm.DB, actor *models.User, userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return users, nil
}

// Update applies a partial update. Only the user themselves or an admin may
// touch a record; isActive and role are admin-only fields and a non-admin
// sending them is rejected, not silently ignored.
func (s *UserServiceImpl) Update(db *gorm.DB, actor *models.User, userID string, req *dto.UpdateUserRequest) (*models.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperrors.ErrInvalidUserID
	}

	if !auth.CanModify(actor, userID) {
		return nil, apperrors.ErrAccessDenied
	}

	if (req.IsActive != nil || req.Role != nil) && !actor.IsAdmin() {
		return nil, apperrors.ErrAccessDenied
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(db, *req.Email); err == nil {
			return nil, apperrors.ErrEmailAlreadyExists
		} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	return user, nil
}

// Delete removes a user and, first, every ad they own. The repository runs
// both in one transaction so a failed ad sweep leaves the user in place.
func (s *UserServiceImpl) Delete(db *gorm.DB, actor *models.User, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return apperrors.ErrInvalidUserID
	}

	if !auth.CanModify(actor, userID) {
		return apperrors.ErrAccessDenied
	}

	if err := s.userRepo.Delete(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}

	logger.Info("user deleted", "user_id", userID, "actor_id", actor.ID)
	return nil
}
