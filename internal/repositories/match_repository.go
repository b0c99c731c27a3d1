package repositories

import (
	"errors"

	"amora_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchRepository mediates access to the matches table.
type MatchRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Match, error)
	FindForProfile(db *gorm.DB, profileID string) ([]models.Match, error)
}

type matchRepository struct{}

func NewMatchRepository() MatchRepository {
	return &matchRepository{}
}

func (r *matchRepository) FindByID(db *gorm.DB, id string) (*models.Match, error) {
	var match models.Match
	err := db.Where("id = ?", id).First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// FindForProfile returns every match the profile is part of, newest
// first, with both profiles preloaded for rendering match lists.
func (r *matchRepository) FindForProfile(db *gorm.DB, profileID string) ([]models.Match, error) {
	var matches []models.Match
	err := db.
		Preload("Profile1").
		Preload("Profile2").
		Where("profile1_id = ? OR profile2_id = ?", profileID, profileID).
		Order("matched_at DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
