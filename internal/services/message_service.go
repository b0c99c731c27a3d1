package services

import (
	"errors"

	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services/dto"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MessageService handles chat inside a match.
type MessageService interface {
	Send(db *gorm.DB, userID string, req *dto.SendMessageRequest) (*models.Message, error)
	ListForMatch(db *gorm.DB, userID, matchID string) ([]models.Message, error)
	MarkRead(db *gorm.DB, userID, messageID string) (*models.Message, error)
}

type messageService struct {
	matchService MatchService
	messageRepo  repositories.MessageRepository
}

func NewMessageService(matchService MatchService, messageRepo repositories.MessageRepository) MessageService {
	return &messageService{matchService: matchService, messageRepo: messageRepo}
}

func (s *messageService) Send(db *gorm.DB, userID string, req *dto.SendMessageRequest) (*models.Message, error) {
	_, profileID, err := s.matchService.RequireParticipant(db, userID, req.MatchID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		MatchID:  req.MatchID,
		SenderID: profileID,
		Content:  req.Content,
		Type:     req.Type,
	}
	if message.Type == "" {
		message.Type = models.MessageTypeText
	}

	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.UpstreamError("message", err)
	}
	return message, nil
}

func (s *messageService) ListForMatch(db *gorm.DB, userID, matchID string) ([]models.Message, error) {
	if _, _, err := s.matchService.RequireParticipant(db, userID, matchID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByMatch(db, matchID)
	if err != nil {
		return nil, apperrors.UpstreamError("message", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (s *messageService) MarkRead(db *gorm.DB, userID, messageID string) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(db, messageID)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.NewNotFoundError("message", "Message not found")
		}
		return nil, apperrors.UpstreamError("message", err)
	}

	// Only a participant of the message's match may mark it read.
	if _, _, err := s.matchService.RequireParticipant(db, userID, message.MatchID); err != nil {
		return nil, err
	}

	updated, err := s.messageRepo.MarkRead(db, messageID)
	if err != nil {
		return nil, apperrors.UpstreamError("message", err)
	}
	return updated, nil
}
