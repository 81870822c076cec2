package handlers

import (
	"net/http"

	"integrators-backend/dtos"
	"integrators-backend/models"
	"integrators-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistHandler struct {
	DB *gorm.DB
}

func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var items []models.WishlistItem
	if err := h.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	var products []models.Product
	if len(productIDs) > 0 {
		if err := productScope(h.DB).Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
	}

	// Preserve wishlist order (newest first) rather than query order.
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]models.Product, 0, len(items))
	for _, item := range items {
		if p, ok := byID[item.ProductID]; ok {
			ordered = append(ordered, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"products": dtos.NewProductResponses(ordered)})
}

// AddToWishlist is idempotent: re-adding an existing pair returns the existing
// association without creating a second row.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req struct {
		ProductID uuid.UUID `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var product models.Product
	if err := h.DB.First(&product, "id = ?", req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var existing models.WishlistItem
	if err := h.DB.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"item": existing})
		return
	}

	item := models.WishlistItem{UserID: userID, ProductID: req.ProductID}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	result := h.DB.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WishlistHandler) Contains(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var count int64
	h.DB.Model(&models.WishlistItem{}).Where("user_id = ? AND product_id = ?", userID, productID).Count(&count)
	c.JSON(http.StatusOK, gin.H{"contains": count > 0})
}
