package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
	"gorm.io/gorm"
)

type QRCode struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug            string    `gorm:"uniqueIndex;size:32;not null" json:"slug"`
	Data            string    `gorm:"type:text;not null" json:"data"`
	Filename        string    `gorm:"size:255;not null" json:"filename"`
	BoxSize         int       `gorm:"default:10" json:"box_size"`
	Border          int       `gorm:"default:4" json:"border"`
	ErrorCorrection string    `gorm:"size:1;default:M" json:"error_correction"`
	FgColor         string    `gorm:"size:7;default:#000000" json:"fg_color"`
	BgColor         string    `gorm:"size:7;default:#ffffff" json:"bg_color"`
	LogoPath        *string   `gorm:"size:400" json:"logo_path,omitempty"`
	ImagePath       string    `gorm:"size:400;not null" json:"-"`
	DownloadCount   int64     `gorm:"default:0" json:"download_count"`
	RequesterIP     string    `gorm:"size:45" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

func (q *QRCode) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Slug == "" {
		q.Slug = shortuuid.New()
	}
	return nil
}
