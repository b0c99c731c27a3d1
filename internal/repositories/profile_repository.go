package repositories

import (
	"errors"

	"amora_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

// ProfileRepository mediates access to the provider's profiles table.
type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	Update(db *gorm.DB, profile *models.Profile) error
	Discover(db *gorm.DB, requester *models.Profile, limit int) ([]models.Profile, error)
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *models.Profile) error {
	var existing models.Profile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}

	return db.Create(profile).Error
}

func (r *profileRepository) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(db *gorm.DB, profile *models.Profile) error {
	return db.Save(profile).Error
}

// Discover returns visible candidate profiles for the requester,
// excluding the requester's own profile, everyone already swiped and
// everyone blocked. Single query with subquery exclusion;
// database-default order, no cursor.
func (r *profileRepository) Discover(db *gorm.DB, requester *models.Profile, limit int) ([]models.Profile, error) {
	swiped := db.Model(&models.Swipe{}).Select("swiped_id").Where("swiper_id = ?", requester.ID)
	blocked := db.Model(&models.Block{}).Select("blocked_id").Where("blocker_id = ?", requester.ID)

	var candidates []models.Profile
	err := db.
		Where("is_visible = ?", true).
		Where("id <> ?", requester.ID).
		Where("user_id <> ?", requester.UserID).
		Where("id NOT IN (?)", swiped).
		Where("id NOT IN (?)", blocked).
		Limit(limit).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	return candidates, nil
}
