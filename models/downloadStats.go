package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DownloadEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	QRCodeID  uuid.UUID `gorm:"index;not null"`
	QRCode    QRCode    `gorm:"foreignKey:QRCodeID"`
	IPAddress string    `gorm:"size:45"`
	UserAgent string    `gorm:"size:512"`
	CreatedAt time.Time
}

func (e *DownloadEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
