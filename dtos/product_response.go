package dtos

import (
	"integrators-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Ref is a minimal id+name pair for hierarchy ancestors.
type Ref struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductResponse is the flattened product view the catalog endpoints return:
// the product's own attributes plus its full ancestry walked up from the
// model, so clients never join the hierarchy themselves.
type ProductResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	OriginalPrice  *decimal.Decimal  `json:"original_price,omitempty"`
	OnDeal         bool              `json:"on_deal"`
	InStock        bool              `json:"in_stock"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	ViewCount      int               `json:"view_count"`
	Specifications datatypes.JSONMap `json:"specifications"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Model          *Ref              `json:"model,omitempty"`
	Brand          *Ref              `json:"brand,omitempty"`
	Category       *Ref              `json:"category,omitempty"`
	Service        *Ref              `json:"service,omitempty"`
}

// NewProductResponse flattens a product with whatever ancestry is preloaded.
// The walk stops at the first unloaded ancestor rather than fabricating refs.
func NewProductResponse(p models.Product) ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		OnDeal:         p.OnDeal(),
		InStock:        p.InStock,
		Rating:         p.Rating,
		Reviews:        p.Reviews,
		ViewCount:      p.ViewCount,
		Specifications: p.Specifications,
		Images:         []string{},
	}
	if p.OriginalPrice.Valid {
		op := p.OriginalPrice.Decimal
		resp.OriginalPrice = &op
	}

	for _, img := range p.Images {
		resp.Images = append(resp.Images, img.ImageURL)
	}
	if len(resp.Images) > 0 {
		resp.Image = resp.Images[0]
	}

	if p.Model.ID == uuid.Nil {
		return resp
	}
	resp.Model = &Ref{ID: p.Model.ID, Name: p.Model.Name}
	// Fall back to the model image when the product carries none of its own.
	if resp.Image == "" {
		resp.Image = p.Model.Image
	}

	if p.Model.Brand.ID == uuid.Nil {
		return resp
	}
	resp.Brand = &Ref{ID: p.Model.Brand.ID, Name: p.Model.Brand.Name}

	if p.Model.Brand.Category.ID == uuid.Nil {
		return resp
	}
	resp.Category = &Ref{ID: p.Model.Brand.Category.ID, Name: p.Model.Brand.Category.Name}

	if p.Model.Brand.Category.Service.ID == uuid.Nil {
		return resp
	}
	resp.Service = &Ref{ID: p.Model.Brand.Category.Service.ID, Name: p.Model.Brand.Category.Service.Name}
	return resp
}

// NewProductResponses maps a slice, preserving order.
func NewProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, NewProductResponse(p))
	}
	return responses
}
