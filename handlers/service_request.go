package handlers

import (
	"net/http"
	"os"
	"strings"

	"integrators-backend/models"
	"integrators-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRequestHandler struct {
	DB *gorm.DB
}

func (h *ServiceRequestHandler) CreateServiceRequest(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req struct {
		CategoryID   *uuid.UUID `json:"category_id"`
		Subject      string     `json:"subject" binding:"required"`
		Description  string     `json:"description"`
		ContactName  string     `json:"contact_name"`
		ContactPhone string     `json:"contact_phone"`
		ContactEmail string     `json:"contact_email"`
		Address      string     `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := h.DB.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}
	}

	request := models.ServiceRequest{
		UserID:       userID,
		CategoryID:   req.CategoryID,
		Subject:      req.Subject,
		Description:  req.Description,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Address:      req.Address,
		Status:       models.ServiceRequestStatusPending,
	}
	if err := h.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service request"})
		return
	}

	if salesEmail := os.Getenv("SALES_ALERT_EMAIL"); salesEmail != "" {
		utils.SendServiceRequestAlert(salesEmail, request.Subject, request.ContactName, request.ContactPhone)
	}

	c.JSON(http.StatusCreated, gin.H{"service_request": request})
}

func (h *ServiceRequestHandler) ListServiceRequests(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var requests []models.ServiceRequest
	if err := h.DB.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_requests": requests})
}

func (h *ServiceRequestHandler) GetServiceRequest(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service request ID"})
		return
	}

	var request models.ServiceRequest
	if err := h.DB.Preload("Category").
		Where("id = ? AND user_id = ?", requestID, userID).
		First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service request not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_request": request})
}

// updateServiceRequestStatus accepts any non-empty status string. Sales staff
// use ad-hoc values alongside the common set.
func updateServiceRequestStatus(db *gorm.DB, c *gin.Context, scopeToUser bool) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service request ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must not be empty"})
		return
	}

	query := db.Model(&models.ServiceRequest{}).Where("id = ?", requestID)
	if scopeToUser {
		query = query.Where("user_id = ?", c.MustGet("user_id").(uuid.UUID))
	}

	result := query.Update("status", status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	updateServiceRequestStatus(h.DB, c, true)
}
