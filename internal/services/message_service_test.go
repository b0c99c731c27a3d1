package services_test

import (
	"testing"

	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services"
	"amora_backend/internal/services/dto"
	"amora_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessageService() services.MessageService {
	profileRepo := repositories.NewProfileRepository()
	matchService := services.NewMatchService(profileRepo, repositories.NewMatchRepository())
	return services.NewMessageService(matchService, repositories.NewMessageRepository())
}

func createMatch(t *testing.T, db *gorm.DB, a, b *models.Profile) *models.Match {
	t.Helper()
	p1, p2 := models.OrderedPair(a.ID, b.ID)
	match := &models.Match{Profile1ID: p1, Profile2ID: p2}
	require.NoError(t, db.Create(match).Error)
	return match
}

func TestSendMessageBetweenMatchedProfiles(t *testing.T) {
	db := setupTestDB(t)
	svc := newMessageService()

	alice := createProfile(t, db, "user-a", "Alice")
	bob := createProfile(t, db, "user-b", "Bob")
	match := createMatch(t, db, alice, bob)

	message, err := svc.Send(db, "user-a", &dto.SendMessageRequest{
		MatchID: match.ID,
		Content: "hey!",
	})
	require.NoError(t, err)

	assert.Equal(t, match.ID, message.MatchID)
	assert.Equal(t, alice.ID, message.SenderID)
	assert.Equal(t, models.MessageTypeText, message.Type)
	assert.False(t, message.IsRead)
}

func TestSendMessageOutsiderForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := newMessageService()

	alice := createProfile(t, db, "user-a", "Alice")
	bob := createProfile(t, db, "user-b", "Bob")
	createProfile(t, db, "user-c", "Carol")
	match := createMatch(t, db, alice, bob)

	_, err := svc.Send(db, "user-c", &dto.SendMessageRequest{
		MatchID: match.ID,
		Content: "let me in",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestListMessagesOrderedOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newMessageService()

	alice := createProfile(t, db, "user-a", "Alice")
	bob := createProfile(t, db, "user-b", "Bob")
	match := createMatch(t, db, alice, bob)

	_, err := svc.Send(db, "user-a", &dto.SendMessageRequest{MatchID: match.ID, Content: "first"})
	require.NoError(t, err)
	_, err = svc.Send(db, "user-b", &dto.SendMessageRequest{MatchID: match.ID, Content: "second"})
	require.NoError(t, err)

	messages, err := svc.ListForMatch(db, "user-a", match.ID)
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
}

func TestMarkReadByParticipant(t *testing.T) {
	db := setupTestDB(t)
	svc := newMessageService()

	alice := createProfile(t, db, "user-a", "Alice")
	bob := createProfile(t, db, "user-b", "Bob")
	match := createMatch(t, db, alice, bob)

	sent, err := svc.Send(db, "user-a", &dto.SendMessageRequest{MatchID: match.ID, Content: "hi"})
	require.NoError(t, err)

	updated, err := svc.MarkRead(db, "user-b", sent.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
}

func TestMarkReadUnknownMessage(t *testing.T) {
	db := setupTestDB(t)
	svc := newMessageService()

	createProfile(t, db, "user-a", "Alice")

	_, err := svc.MarkRead(db, "user-a", "11111111-1111-1111-1111-111111111111")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
