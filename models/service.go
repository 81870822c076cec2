package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the top-level catalog grouping (e.g. "CCTV", "Networking").
type Service struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Icon        string         `json:"icon"` // Icon name or identifier
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Categories  []Category     `gorm:"foreignKey:ServiceID" json:"categories,omitempty"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
