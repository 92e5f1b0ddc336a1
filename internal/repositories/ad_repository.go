package repositories

import (
	"errors"

	"adboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdNotFound = errors.New("ad not found")

type AdRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Ad, error)
	FindAll(db *gorm.DB) ([]models.Ad, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Ad, error)
	Create(db *gorm.DB, ad *models.Ad) error
	Update(db *gorm.DB, ad *models.Ad) error
	Delete(db *gorm.DB, id string) error
}

type AdRepositoryImpl struct{}

func NewAdRepository() AdRepository {
	return &AdRepositoryImpl{}
}

func (r *AdRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Ad, error) {
	var ad models.Ad
	err := db.First(&ad, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, err
	}
	return &ad, nil
}

// FindAll returns every ad with its owner's public fields preloaded.
func (r *AdRepositoryImpl) FindAll(db *gorm.DB) ([]models.Ad, error) {
	var ads []models.Ad
	err := db.
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "phone")
		}).
		Order("created_at DESC").
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *AdRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Ad, error) {
	var ads []models.Ad
	if err := db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *AdRepositoryImpl) Create(db *gorm.DB, ad *models.Ad) error {
	return db.Create(ad).Error
}

// Update writes the mutable fields only; OwnerID is immutable after create.
func (r *AdRepositoryImpl) Update(db *gorm.DB, ad *models.Ad) error {
	result := db.Model(&models.Ad{}).Where("id = ?", ad.ID).Updates(map[string]interface{}{
		"title":       ad.Title,
		"description": ad.Description,
		"price":       ad.Price,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}
	return nil
}

func (r *AdRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Ad{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}
	return nil
}
