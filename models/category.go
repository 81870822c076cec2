package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category sits directly beneath a Service. Name uniqueness is scoped to the
// parent service and enforced by the seeder's reuse-if-found lookup, not by a
// database constraint.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	ServiceID uuid.UUID      `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   Service        `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Brands    []Brand        `gorm:"foreignKey:CategoryID" json:"brands,omitempty"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
