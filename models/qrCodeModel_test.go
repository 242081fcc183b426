package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"qrgen/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:models_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.QRCode{}, &models.DownloadEvent{}))
	return db
}

func TestQRCodeBeforeCreateAssignsIdentifiers(t *testing.T) {
	db := openTestDB(t)

	rec := models.QRCode{
		Data:      "hello",
		Filename:  "hello.png",
		ImagePath: "generated/hello.png",
	}
	require.NoError(t, db.Create(&rec).Error)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.NotEmpty(t, rec.Slug)

	var stored models.QRCode
	require.NoError(t, db.First(&stored, "id = ?", rec.ID).Error)
	assert.Equal(t, rec.Slug, stored.Slug)
	assert.Equal(t, int64(0), stored.DownloadCount)
}

func TestQRCodeKeepsProvidedIdentifiers(t *testing.T) {
	db := openTestDB(t)

	id := uuid.New()
	rec := models.QRCode{
		ID:        id,
		Slug:      "fixed-slug",
		Data:      "hello",
		Filename:  "hello.png",
		ImagePath: "generated/hello.png",
	}
	require.NoError(t, db.Create(&rec).Error)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "fixed-slug", rec.Slug)
}

func TestSlugUniqueness(t *testing.T) {
	db := openTestDB(t)

	first := models.QRCode{Slug: "dup", Data: "a", Filename: "a.png", ImagePath: "generated/a.png"}
	require.NoError(t, db.Create(&first).Error)

	second := models.QRCode{Slug: "dup", Data: "b", Filename: "b.png", ImagePath: "generated/b.png"}
	assert.Error(t, db.Create(&second).Error)
}

func TestDownloadEventBeforeCreate(t *testing.T) {
	db := openTestDB(t)

	rec := models.QRCode{Data: "hello", Filename: "h.png", ImagePath: "generated/h.png"}
	require.NoError(t, db.Create(&rec).Error)

	evt := models.DownloadEvent{QRCodeID: rec.ID, IPAddress: "127.0.0.1"}
	require.NoError(t, db.Create(&evt).Error)
	assert.NotEqual(t, uuid.Nil, evt.ID)
}
