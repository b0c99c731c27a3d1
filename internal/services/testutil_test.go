package services_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"amora_backend/database"
	"amora_backend/internal/models"
	"amora_backend/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createProfile(t *testing.T, db *gorm.DB, userID, name string) *models.Profile {
	t.Helper()
	profile := &models.Profile{
		UserID:      userID,
		DisplayName: name,
		IsVisible:   true,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func newLocalStorage(t *testing.T, bucket string) storage.Storage {
	t.Helper()
	store, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: t.TempDir(),
		Bucket:   bucket,
	})
	require.NoError(t, err)
	return store
}

// makeFileHeader builds a real *multipart.FileHeader by writing and
// re-parsing a multipart form, the same way gin receives uploads.
func makeFileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
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
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(64 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File[field]
	require.Len(t, headers, 1)
	return headers[0]
}
