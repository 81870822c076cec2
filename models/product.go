package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is the sellable item attached one-to-one to a Model. Specifications
// is a free string-to-string map since the key set differs per product
// category (a camera has "Resolution", a switch has "Ports").
type Product struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string              `gorm:"not null;index" json:"name"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `gorm:"type:numeric" json:"price"`
	OriginalPrice decimal.NullDecimal `gorm:"type:numeric" json:"original_price"`
	InStock       bool                `gorm:"default:true" json:"in_stock"`
	Rating        float64             `gorm:"default:0" json:"rating"`
	Reviews       int                 `gorm:"default:0" json:"reviews"`
	ViewCount     int                 `gorm:"default:0" json:"view_count"`
	Specifications datatypes.JSONMap  `json:"specifications"`
	ModelID       uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex" json:"model_id"`
	Model         Model               `gorm:"foreignKey:ModelID" json:"model,omitempty"`
	Images        []ProductImage      `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// OnDeal reports whether the product has a struck-through original price
// higher than its current price.
func (p *Product) OnDeal() bool {
	return p.OriginalPrice.Valid && p.OriginalPrice.Decimal.GreaterThan(p.Price)
}
