package repositories

import (
	"errors"

	"amora_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBlockAlreadyExists = errors.New("block already exists")

// ModerationRepository mediates access to the blocks and reports tables.
type ModerationRepository interface {
	CreateBlock(db *gorm.DB, block *models.Block) error
	DeleteBlock(db *gorm.DB, blockerID, blockedID string) error
	CreateReport(db *gorm.DB, report *models.Report) error
}

type moderationRepository struct{}

func NewModerationRepository() ModerationRepository {
	return &moderationRepository{}
}

func (r *moderationRepository) CreateBlock(db *gorm.DB, block *models.Block) error {
	var existing models.Block
	err := db.Where("blocker_id = ? AND blocked_id = ?", block.BlockerID, block.BlockedID).
		First(&existing).Error
	if err == nil {
		return ErrBlockAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(block).Error
}

// DeleteBlock is idempotent: removing a non-existent block is not an
// error.
func (r *moderationRepository) DeleteBlock(db *gorm.DB, blockerID, blockedID string) error {
	return db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{}).Error
}

func (r *moderationRepository) CreateReport(db *gorm.DB, report *models.Report) error {
	return db.Create(report).Error
}
