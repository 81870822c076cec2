package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is a specific product line beneath a Brand. It owns at most one
// Product (one-to-one).
type Model struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	Image     string         `json:"image"`
	BrandID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"brand_id"`
	Brand     Brand          `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
