package repositories

import (
	"errors"

	"amora_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository mediates access to the messages table.
type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	ListByMatch(db *gorm.DB, matchID string) ([]models.Message, error)
	MarkRead(db *gorm.DB, id string) (*models.Message, error)
}

type messageRepository struct{}

func NewMessageRepository() MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	err := db.Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// ListByMatch returns a match's messages ordered oldest first.
func (r *messageRepository) ListByMatch(db *gorm.DB, matchID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("match_id = ?", matchID).Order("created_at ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) MarkRead(db *gorm.DB, id string) (*models.Message, error) {
	message, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(message).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	message.IsRead = true
	return message, nil
}
