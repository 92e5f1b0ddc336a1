package services

import (
	"adboard_backend/internal/auth"
	"adboard_backend/internal/models"
	"adboard_backend/internal/repositories"
	"adboard_backend/internal/services/dto"
	"adboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdService interface {
	List(db *gorm.DB) ([]models.Ad, error)
	Create(db *gorm.DB, actor *models.User, req *dto.CreateAdRequest) (*models.Ad, error)
	Update(db *gorm.DB, actor *models.User, adID string, req *dto.UpdateAdRequest) (*models.Ad, error)
	Delete(db *gorm.DB, actor *models.User, adID string) error
}

type AdServiceImpl struct {
	adRepo repositories.AdRepository
}

func NewAdService(adRepo repositories.AdRepository) AdService {
	return &AdServiceImpl{adRepo: adRepo}
}

// List is open: any caller, authenticated or not, may browse ads.
func (s *AdServiceImpl) List(db *gorm.DB) ([]models.Ad, error) {
	ads, err := s.adRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return ads, nil
}

// Create sets the owner from the resolved actor, never from the payload.
func (s *AdServiceImpl) Create(db *gorm.DB, actor *models.User, req *dto.CreateAdRequest) (*models.Ad, error) {
	ad := &models.Ad{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		OwnerID:     actor.ID,
	}

	if err := s.adRepo.Create(db, ad); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return ad, nil
}

func (s *AdServiceImpl) Update(db *gorm.DB, actor *models.User, adID string, req *dto.UpdateAdRequest) (*models.Ad, error) {
	ad, err := s.findForWrite(db, actor, adID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}
	if req.Price != nil {
		ad.Price = *req.Price
	}

	if err := s.adRepo.Update(db, ad); err != nil {
		if apperrors.Is(err, repositories.ErrAdNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return ad, nil
}

func (s *AdServiceImpl) Delete(db *gorm.DB, actor *models.User, adID string) error {
	ad, err := s.findForWrite(db, actor, adID)
	if err != nil {
		return err
	}

	if err := s.adRepo.Delete(db, ad.ID); err != nil {
		if apperrors.Is(err, repositories.ErrAdNotFound) {
			return apperrors.ErrAdNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// findForWrite runs the shared write path: id shape, existence, then the
// ownership policy — in that order, before any mutation.
func (s *AdServiceImpl) findForWrite(db *gorm.DB, actor *models.User, adID string) (*models.Ad, error) {
	if _, err := uuid.Parse(adID); err != nil {
		return nil, apperrors.ErrInvalidAdID
	}

	ad, err := s.adRepo.FindByID(db, adID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CanModify(actor, ad.OwnerID) {
		return nil, apperrors.ErrAccessDenied
	}

	return ad, nil
}
