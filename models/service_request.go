package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRequestStatusPending is the default status for new requests. The
// status field itself stays a free string: sales staff use ad-hoc values like
// RESOLVED alongside the common PENDING/IN_PROGRESS/COMPLETED set.
const ServiceRequestStatusPending = "PENDING"

type ServiceRequest struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User         User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid" json:"category_id,omitempty"`
	Category     *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subject      string         `gorm:"not null" json:"subject"`
	Description  string         `json:"description"`
	ContactName  string         `json:"contact_name"`
	ContactPhone string         `json:"contact_phone"`
	ContactEmail string         `json:"contact_email"`
	Address      string         `json:"address"`
	Status       string         `gorm:"default:'PENDING'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (sr *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if sr.ID == uuid.Nil {
		sr.ID = uuid.New()
	}
	if sr.Status == "" {
		sr.Status = ServiceRequestStatusPending
	}
	return nil
}
