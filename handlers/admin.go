package handlers

import (
	"net/http"

	"integrators-backend/dtos"
	"integrators-backend/models"
	"integrators-backend/storage"
	"integrators-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB      *gorm.DB
	Storage storage.Client
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

// ---- Services ----

func (h *AdminHandler) CreateService(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	var existing models.Service
	if err := h.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Service name already exists"})
		return
	}

	service := models.Service{Name: req.Name, Icon: req.Icon, Description: req.Description}
	if err := h.DB.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "service": service})
}

func (h *AdminHandler) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.DB.First(&service, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Service not found"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Icon        *string `json:"icon"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Icon != nil {
		service.Icon = *req.Icon
	}
	if req.Description != nil {
		service.Description = *req.Description
	}

	if err := h.DB.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": service})
}

func (h *AdminHandler) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.DB.First(&service, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Service not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var categoryIDs []uuid.UUID
		if err := tx.Model(&models.Category{}).Where("service_id = ?", id).Pluck("id", &categoryIDs).Error; err != nil {
			return err
		}
		if err := cascadeDeleteCategories(tx, categoryIDs); err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- Categories ----

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name      string    `json:"name" binding:"required"`
		ServiceID uuid.UUID `json:"service_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	var service models.Service
	if err := h.DB.First(&service, "id = ?", req.ServiceID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Service not found"})
		return
	}

	category := models.Category{Name: req.Name, ServiceID: req.ServiceID}
	if err := h.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": category})
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}

	// The parent service is immutable; only the name can change.
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	category.Name = req.Name
	if err := h.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		return cascadeDeleteCategories(tx, []uuid.UUID{id})
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- Brands ----

func (h *AdminHandler) CreateBrand(c *gin.Context) {
	var req struct {
		Name       string    `json:"name" binding:"required"`
		CategoryID uuid.UUID `json:"category_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category not found"})
		return
	}

	brand := models.Brand{Name: req.Name, CategoryID: req.CategoryID}
	if err := h.DB.Create(&brand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create brand"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "brand": brand})
}

func (h *AdminHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var brand models.Brand
	if err := h.DB.First(&brand, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	brand.Name = req.Name
	if err := h.DB.Save(&brand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update brand"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brand": brand})
}

func (h *AdminHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var brand models.Brand
	if err := h.DB.First(&brand, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		return cascadeDeleteBrands(tx, []uuid.UUID{id})
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete brand"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- Models ----

func (h *AdminHandler) CreateModel(c *gin.Context) {
	var req struct {
		Name    string    `json:"name" binding:"required"`
		Image   string    `json:"image"`
		BrandID uuid.UUID `json:"brand_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	var brand models.Brand
	if err := h.DB.First(&brand, "id = ?", req.BrandID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Brand not found"})
		return
	}

	model := models.Model{Name: req.Name, Image: req.Image, BrandID: req.BrandID}
	if err := h.DB.Create(&model).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create model"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "model": model})
}

func (h *AdminHandler) UpdateModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var model models.Model
	if err := h.DB.First(&model, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Model not found"})
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Image *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.Image != nil {
		model.Image = *req.Image
	}

	if err := h.DB.Save(&model).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update model"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "model": model})
}

func (h *AdminHandler) DeleteModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var model models.Model
	if err := h.DB.First(&model, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Model not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		return cascadeDeleteModels(tx, []uuid.UUID{id})
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete model"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- Products ----

type productRequest struct {
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price" binding:"required"`
	OriginalPrice  *decimal.Decimal  `json:"original_price"`
	InStock        *bool             `json:"in_stock"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`
}

func specsToJSONMap(specs map[string]string) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for k, v := range specs {
		out[k] = v
	}
	return out
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req struct {
		productRequest
		ModelID uuid.UUID `json:"model_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	var model models.Model
	if err := h.DB.First(&model, "id = ?", req.ModelID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Model not found"})
		return
	}

	var existing models.Product
	if err := h.DB.Where("model_id = ?", req.ModelID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Model already has a product"})
		return
	}

	product := models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		InStock:        true,
		Rating:         req.Rating,
		Reviews:        req.Reviews,
		Specifications: specsToJSONMap(req.Specifications),
		ModelID:        req.ModelID,
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = decimal.NewNullDecimal(*req.OriginalPrice)
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	for i, url := range req.Images {
		product.Images = append(product.Images, models.ProductImage{ImageURL: url, Position: i})
	}

	if err := h.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": dtos.NewProductResponse(product)})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.DB.Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	var req struct {
		Name           *string           `json:"name"`
		Description    *string           `json:"description"`
		Price          *decimal.Decimal  `json:"price"`
		OriginalPrice  *decimal.Decimal  `json:"original_price"`
		InStock        *bool             `json:"in_stock"`
		Rating         *float64          `json:"rating"`
		Reviews        *int              `json:"reviews"`
		Specifications map[string]string `json:"specifications"`
		Images         []string          `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = decimal.NewNullDecimal(*req.OriginalPrice)
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Reviews != nil {
		product.Reviews = *req.Reviews
	}
	if req.Specifications != nil {
		product.Specifications = specsToJSONMap(req.Specifications)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.Images != nil {
			// Replace the image list wholesale; positions follow request order.
			if err := tx.Unscoped().Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			product.Images = nil
			for i, url := range req.Images {
				product.Images = append(product.Images, models.ProductImage{ProductID: product.ID, ImageURL: url, Position: i})
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": dtos.NewProductResponse(product)})
}

// DeleteProduct removes the product and its images. The owning model stays.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.DB.First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- Upload ----

func (h *AdminHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file provided"})
		return
	}

	if err := utils.ValidateFileUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to read file"})
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadProductImage(file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "imageUrl": url})
}

// ---- cascade helpers ----

// Catalog deletes cascade down the hierarchy. Products go with their models;
// a model deleted through its product does not exist, so product deletion
// never reaches upward.

func cascadeDeleteCategories(tx *gorm.DB, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	var brandIDs []uuid.UUID
	if err := tx.Model(&models.Brand{}).Where("category_id IN ?", categoryIDs).Pluck("id", &brandIDs).Error; err != nil {
		return err
	}
	if err := cascadeDeleteBrands(tx, brandIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", categoryIDs).Delete(&models.Category{}).Error
}

func cascadeDeleteBrands(tx *gorm.DB, brandIDs []uuid.UUID) error {
	if len(brandIDs) == 0 {
		return nil
	}
	var modelIDs []uuid.UUID
	if err := tx.Model(&models.Model{}).Where("brand_id IN ?", brandIDs).Pluck("id", &modelIDs).Error; err != nil {
		return err
	}
	if err := cascadeDeleteModels(tx, modelIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", brandIDs).Delete(&models.Brand{}).Error
}

func cascadeDeleteModels(tx *gorm.DB, modelIDs []uuid.UUID) error {
	if len(modelIDs) == 0 {
		return nil
	}
	var productIDs []uuid.UUID
	if err := tx.Model(&models.Product{}).Where("model_id IN ?", modelIDs).Pluck("id", &productIDs).Error; err != nil {
		return err
	}
	if len(productIDs) > 0 {
		if err := tx.Where("product_id IN ?", productIDs).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", productIDs).Delete(&models.Product{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", modelIDs).Delete(&models.Model{}).Error
}
