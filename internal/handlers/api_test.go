package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"amora_backend/database"
	"amora_backend/internal/app"
	"amora_backend/internal/auth"
	"amora_backend/internal/config"
	"amora_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "api-test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Auth.JWTSecret = testJWTSecret
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.PhotoBucket = "profile-photos"
	cfg.Storage.DocumentBucket = "verification-documents"
	cfg.Storage.SignedURLTTL = 3600
	cfg.Upload.MaxPhotoSize = 10 * 1024 * 1024
	cfg.Upload.MaxDocumentSize = 20 * 1024 * 1024
	cfg.Upload.PhotoTypes = []string{"image/jpeg", "image/png", "image/webp"}
	cfg.Upload.DocumentTypes = []string{"image/jpeg", "image/png", "image/webp", "application/pdf"}

	return app.SetupRouter(cfg, db), db
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.NewToken(testJWTSecret, userID, userID+"@example.com", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createProfileHTTP(t *testing.T, router *gin.Engine, userID, name string) models.Profile {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/profile", bearerToken(t, userID), gin.H{
		"display_name": name,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile models.Profile
	decode(t, w, &profile)
	return profile
}

func TestHealthIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/profile", "", gin.H{"display_name": "Eve"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The rejected request must not have written anything.
	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/profile", "Bearer garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProfileLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, "user-a")

	// No profile yet.
	w := doJSON(t, router, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// First POST creates with defaults.
	w = doJSON(t, router, http.MethodPost, "/api/profile", token, gin.H{
		"display_name": "Alice",
		"bio":          "hello",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created models.Profile
	decode(t, w, &created)
	assert.Equal(t, "Alice", created.DisplayName)
	assert.False(t, created.IsProfileComplete)
	assert.False(t, created.IsVisible)
	assert.Equal(t, models.VerificationStatusUnverified, created.VerificationStatus)

	// PUT applies a partial update without clearing other fields.
	w = doJSON(t, router, http.MethodPut, "/api/profile", token, gin.H{
		"city":       "Berlin",
		"is_visible": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Profile
	decode(t, w, &updated)
	assert.Equal(t, "Alice", updated.DisplayName)
	assert.Equal(t, "Berlin", updated.City)
	assert.True(t, updated.IsVisible)

	// GET reflects the stored state.
	w = doJSON(t, router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Profile
	decode(t, w, &fetched)
	assert.Equal(t, updated.ID, fetched.ID)
	assert.Equal(t, "Berlin", fetched.City)
}

func TestSwipeAndMatchFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	alice := createProfileHTTP(t, router, "user-a", "Alice")
	bob := createProfileHTTP(t, router, "user-b", "Bob")

	// Alice likes Bob: no match yet.
	w := doJSON(t, router, http.MethodPost, "/api/swipe", bearerToken(t, "user-a"), gin.H{
		"swiped_id": bob.ID,
		"action":    "like",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var first struct {
		IsMatch bool `json:"isMatch"`
	}
	decode(t, w, &first)
	assert.False(t, first.IsMatch)

	// Bob likes Alice back: mutual match.
	w = doJSON(t, router, http.MethodPost, "/api/swipe", bearerToken(t, "user-b"), gin.H{
		"swiped_id": alice.ID,
		"action":    "like",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var second struct {
		IsMatch bool          `json:"isMatch"`
		Match   *models.Match `json:"match"`
	}
	decode(t, w, &second)
	assert.True(t, second.IsMatch)
	require.NotNil(t, second.Match)

	// Both sides see the match.
	for _, user := range []string{"user-a", "user-b"} {
		w = doJSON(t, router, http.MethodGet, "/api/matches", bearerToken(t, user), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var matches []models.Match
		decode(t, w, &matches)
		require.Len(t, matches, 1)
		assert.Equal(t, second.Match.ID, matches[0].ID)
	}
}

func TestSwipeValidationRejectsUnknownAction(t *testing.T) {
	router, _ := newTestRouter(t)

	createProfileHTTP(t, router, "user-a", "Alice")
	bob := createProfileHTTP(t, router, "user-b", "Bob")

	w := doJSON(t, router, http.MethodPost, "/api/swipe", bearerToken(t, "user-a"), gin.H{
		"swiped_id": bob.ID,
		"action":    "superlike",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessageFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	alice := createProfileHTTP(t, router, "user-a", "Alice")
	bob := createProfileHTTP(t, router, "user-b", "Bob")

	doJSON(t, router, http.MethodPost, "/api/swipe", bearerToken(t, "user-a"), gin.H{
		"swiped_id": bob.ID, "action": "like",
	})
	w := doJSON(t, router, http.MethodPost, "/api/swipe", bearerToken(t, "user-b"), gin.H{
		"swiped_id": alice.ID, "action": "like",
	})
	var swipe struct {
		Match *models.Match `json:"match"`
	}
	decode(t, w, &swipe)
	require.NotNil(t, swipe.Match)

	// Send a message.
	w = doJSON(t, router, http.MethodPost, "/api/messages", bearerToken(t, "user-a"), gin.H{
		"match_id": swipe.Match.ID,
		"content":  "hi Bob!",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sent models.Message
	decode(t, w, &sent)
	assert.Equal(t, "hi Bob!", sent.Content)

	// Bob lists and marks it read.
	w = doJSON(t, router, http.MethodGet, "/api/messages/"+swipe.Match.ID, bearerToken(t, "user-b"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.Message
	decode(t, w, &messages)
	require.Len(t, messages, 1)

	w = doJSON(t, router, http.MethodPut, "/api/messages/"+sent.ID+"/read", bearerToken(t, "user-b"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var read models.Message
	decode(t, w, &read)
	assert.True(t, read.IsRead)

	// An outsider cannot read the conversation.
	createProfileHTTP(t, router, "user-c", "Carol")
	w = doJSON(t, router, http.MethodGet, "/api/messages/"+swipe.Match.ID, bearerToken(t, "user-c"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBlockRemovesFromDiscovery(t *testing.T) {
	router, db := newTestRouter(t)

	createProfileHTTP(t, router, "user-a", "Alice")
	bob := createProfileHTTP(t, router, "user-b", "Bob")

	// New profiles start hidden, so Bob is not a candidate yet.
	w := doJSON(t, router, http.MethodGet, "/api/discovery", bearerToken(t, "user-a"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hidden []models.Profile
	decode(t, w, &hidden)
	require.Empty(t, hidden)

	require.NoError(t, db.Model(&models.Profile{}).
		Where("id = ?", bob.ID).
		Update("is_visible", true).Error)

	// Bob appears in Alice's feed.
	w = doJSON(t, router, http.MethodGet, "/api/discovery", bearerToken(t, "user-a"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var before []models.Profile
	decode(t, w, &before)
	require.Len(t, before, 1)

	// Alice blocks Bob.
	w = doJSON(t, router, http.MethodPost, "/api/block", bearerToken(t, "user-a"), gin.H{
		"blocked_id": bob.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Blocking twice conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/block", bearerToken(t, "user-a"), gin.H{
		"blocked_id": bob.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Bob is gone from discovery.
	w = doJSON(t, router, http.MethodGet, "/api/discovery", bearerToken(t, "user-a"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var after []models.Profile
	decode(t, w, &after)
	assert.Empty(t, after)

	// Unblock restores him.
	w = doJSON(t, router, http.MethodDelete, "/api/block/"+bob.ID, bearerToken(t, "user-a"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/discovery", bearerToken(t, "user-a"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var restored []models.Profile
	decode(t, w, &restored)
	assert.Len(t, restored, 1)
}

func TestReportCreated(t *testing.T) {
	router, _ := newTestRouter(t)

	createProfileHTTP(t, router, "user-a", "Alice")
	bob := createProfileHTTP(t, router, "user-b", "Bob")

	w := doJSON(t, router, http.MethodPost, "/api/report", bearerToken(t, "user-a"), gin.H{
		"reported_id": bob.ID,
		"reason":      "spam",
		"description": "keeps sending links",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var report models.Report
	decode(t, w, &report)
	assert.Equal(t, "spam", report.Reason)
	assert.Equal(t, models.ReportStatusPending, report.Status)
}

func TestInterestsArePublic(t *testing.T) {
	router, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Interest{Name: "Hiking", Category: "outdoors"}).Error)

	chess := &models.Interest{Name: "Chess", Category: "games"}
	require.NoError(t, db.Create(chess).Error)
	require.NoError(t, db.Model(chess).Update("is_active", false).Error)

	w := doJSON(t, router, http.MethodGet, "/api/interests", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var interests []models.Interest
	decode(t, w, &interests)
	require.Len(t, interests, 1)
	assert.Equal(t, "Hiking", interests[0].Name)
}

func doMultipart(t *testing.T, router *gin.Engine, path, token, field, filename, contentType string, content []byte, extra map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPhotoUploadAndDelete(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, "user-a")
	createProfileHTTP(t, router, "user-a", "Alice")

	w := doMultipart(t, router, "/api/upload/profile-photo", token,
		"photo", "me.jpg", "image/jpeg", []byte("jpeg-bytes"),
		map[string]string{"is_profile": "true", "order": "1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var uploaded struct {
		Success bool                 `json:"success"`
		Photo   *models.ProfilePhoto `json:"photo"`
	}
	decode(t, w, &uploaded)
	assert.True(t, uploaded.Success)
	require.NotNil(t, uploaded.Photo)
	assert.True(t, uploaded.Photo.IsProfile)
	assert.Equal(t, 1, uploaded.Photo.Position)

	// Listed.
	lw := doJSON(t, router, http.MethodGet, "/api/profile-photos", token, nil)
	require.Equal(t, http.StatusOK, lw.Code)
	var photos []models.ProfilePhoto
	decode(t, lw, &photos)
	require.Len(t, photos, 1)

	// Deleted.
	dw := doJSON(t, router, http.MethodDelete, "/api/profile-photos/"+uploaded.Photo.ID, token, nil)
	require.Equal(t, http.StatusOK, dw.Code)

	lw = doJSON(t, router, http.MethodGet, "/api/profile-photos", token, nil)
	decode(t, lw, &photos)
	assert.Empty(t, photos)
}

func TestPhotoUploadRejectsBadType(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, "user-a")
	createProfileHTTP(t, router, "user-a", "Alice")

	w := doMultipart(t, router, "/api/upload/profile-photo", token,
		"photo", "doc.pdf", "application/pdf", []byte("%PDF-1.4"), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	decode(t, w, &body)
	assert.Equal(t, "Invalid file type. Allowed types: image/jpeg, image/png, image/webp", body.Error.Message)
}

func TestVerificationUploadAndList(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, "user-a")
	createProfileHTTP(t, router, "user-a", "Alice")

	w := doMultipart(t, router, "/api/upload/verification", token,
		"document", "passport.pdf", "application/pdf", []byte("%PDF-1.4"),
		map[string]string{"verification_type": "passport"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var uploaded struct {
		Success      bool                 `json:"success"`
		Verification *models.Verification `json:"verification"`
		Message      string               `json:"message"`
	}
	decode(t, w, &uploaded)
	assert.True(t, uploaded.Success)
	assert.Equal(t, "Verification document uploaded successfully", uploaded.Message)
	require.NotNil(t, uploaded.Verification)
	assert.Equal(t, "pending", uploaded.Verification.Status)

	lw := doJSON(t, router, http.MethodGet, "/api/verifications", token, nil)
	require.Equal(t, http.StatusOK, lw.Code)

	var verifications []models.Verification
	decode(t, lw, &verifications)
	require.Len(t, verifications, 1)
	assert.NotEmpty(t, verifications[0].FileURL)
}

func TestVerificationUploadRequiresType(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, "user-a")
	createProfileHTTP(t, router, "user-a", "Alice")

	w := doMultipart(t, router, "/api/upload/verification", token,
		"document", "passport.pdf", "application/pdf", []byte("%PDF-1.4"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
