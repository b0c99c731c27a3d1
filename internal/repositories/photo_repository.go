package repositories

import (
	"errors"

	"amora_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository mediates access to the profile_photos table.
type PhotoRepository interface {
	Create(db *gorm.DB, photo *models.ProfilePhoto) error
	FindByID(db *gorm.DB, id string) (*models.ProfilePhoto, error)
	ListByProfile(db *gorm.DB, profileID string) ([]models.ProfilePhoto, error)
	Delete(db *gorm.DB, id string) error
}

type photoRepository struct{}

func NewPhotoRepository() PhotoRepository {
	return &photoRepository{}
}

func (r *photoRepository) Create(db *gorm.DB, photo *models.ProfilePhoto) error {
	return db.Create(photo).Error
}

func (r *photoRepository) FindByID(db *gorm.DB, id string) (*models.ProfilePhoto, error) {
	var photo models.ProfilePhoto
	err := db.Where("id = ?", id).First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) ListByProfile(db *gorm.DB, profileID string) ([]models.ProfilePhoto, error) {
	var photos []models.ProfilePhoto
	err := db.Where("profile_id = ?", profileID).Order("position ASC").Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.ProfilePhoto{}).Error
}
