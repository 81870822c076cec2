package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"integrators-backend/dtos"
	"integrators-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	DB *gorm.DB
}

// productScope preloads everything the flattened response walks.
func productScope(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Model").
		Preload("Model.Brand").
		Preload("Model.Brand.Category").
		Preload("Model.Brand.Category.Service")
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.DB.Order("created_at ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	var categories []models.Category
	if err := h.DB.Where("service_id = ?", serviceID).Order("created_at ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var brands []models.Brand
	if err := h.DB.Where("category_id = ?", categoryID).Order("created_at ASC").Find(&brands).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (h *CatalogHandler) ListModels(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("brandId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}

	var modelRows []models.Model
	if err := h.DB.Where("brand_id = ?", brandID).Order("created_at ASC").Find(&modelRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch models"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": modelRows})
}

// GetProductByModel returns the flattened product owned by a model and counts
// the view.
func (h *CatalogHandler) GetProductByModel(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("modelId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model ID"})
		return
	}

	var product models.Product
	if err := productScope(h.DB).Where("model_id = ?", modelID).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.DB.Model(&product).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	product.ViewCount++

	c.JSON(http.StatusOK, gin.H{"product": dtos.NewProductResponse(product)})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := h.DB.Model(&models.Product{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	var products []models.Product
	if err := productScope(h.DB).
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": dtos.NewProductResponses(products),
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// SearchProducts does a case-insensitive substring match over product name and
// description.
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query required"})
		return
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var products []models.Product
	if err := productScope(h.DB).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": dtos.NewProductResponses(products)})
}

// ListDeals returns products whose original price is above the current price.
func (h *CatalogHandler) ListDeals(c *gin.Context) {
	var products []models.Product
	if err := productScope(h.DB).
		Where("original_price IS NOT NULL AND original_price > price").
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": dtos.NewProductResponses(products)})
}

func (h *CatalogHandler) ListNewArrivals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var products []models.Product
	if err := productScope(h.DB).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch new arrivals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": dtos.NewProductResponses(products)})
}

func (h *CatalogHandler) ListPopular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var products []models.Product
	if err := productScope(h.DB).
		Order("view_count DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch popular products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": dtos.NewProductResponses(products)})
}
