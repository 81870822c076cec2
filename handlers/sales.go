package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"integrators-backend/models"
	"integrators-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesHandler serves the back-office dashboard shared by SALES and ADMIN.
type SalesHandler struct {
	DB *gorm.DB
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// serviceRequestCompleted treats COMPLETED and RESOLVED as one terminal bucket.
func serviceRequestCompleted(status string) bool {
	return status == "COMPLETED" || status == "RESOLVED"
}

func (h *SalesHandler) DashboardStats(c *gin.Context) {
	var orders []models.Order
	if err := h.DB.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	now := time.Now()
	totalRevenue := decimal.Zero
	todayRevenue := decimal.Zero
	var pendingOrders, completedOrders int
	for _, order := range orders {
		totalRevenue = totalRevenue.Add(order.Total)
		if sameDay(order.CreatedAt, now) {
			todayRevenue = todayRevenue.Add(order.Total)
		}
		switch order.Status {
		case models.OrderStatusPending:
			pendingOrders++
		case models.OrderStatusCompleted:
			completedOrders++
		}
	}

	var requests []models.ServiceRequest
	if err := h.DB.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service requests"})
		return
	}
	var pendingRequests, inProgressRequests, completedRequests int
	for _, r := range requests {
		switch {
		case r.Status == "PENDING":
			pendingRequests++
		case r.Status == "IN_PROGRESS":
			inProgressRequests++
		case serviceRequestCompleted(r.Status):
			completedRequests++
		}
	}

	var totalCustomers int64
	if err := h.DB.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&totalCustomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":               totalRevenue,
		"todayRevenue":               todayRevenue,
		"totalOrders":                len(orders),
		"pendingOrders":              pendingOrders,
		"completedOrders":            completedOrders,
		"totalServiceRequests":       len(requests),
		"pendingServiceRequests":     pendingRequests,
		"inProgressServiceRequests":  inProgressRequests,
		"completedServiceRequests":   completedRequests,
		"totalCustomers":             totalCustomers,
	})
}

func chartDays(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 365 {
		return 7
	}
	return days
}

// dayBuckets returns exactly n day-start times, oldest first, ending today.
func dayBuckets(n int, now time.Time) []time.Time {
	buckets := make([]time.Time, n)
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	for i := 0; i < n; i++ {
		buckets[i] = today.AddDate(0, 0, i-n+1)
	}
	return buckets
}

func (h *SalesHandler) RevenueChart(c *gin.Context) {
	days := chartDays(c)

	var orders []models.Order
	if err := h.DB.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	series := make([]gin.H, 0, days)
	for _, bucket := range dayBuckets(days, time.Now()) {
		sum := decimal.Zero
		for _, order := range orders {
			if sameDay(order.CreatedAt, bucket) {
				sum = sum.Add(order.Total)
			}
		}
		series = append(series, gin.H{"label": bucket.Format("Jan 02"), "value": sum})
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (h *SalesHandler) OrdersChart(c *gin.Context) {
	days := chartDays(c)

	var orders []models.Order
	if err := h.DB.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	series := make([]gin.H, 0, days)
	for _, bucket := range dayBuckets(days, time.Now()) {
		count := 0
		for _, order := range orders {
			if sameDay(order.CreatedAt, bucket) {
				count++
			}
		}
		series = append(series, gin.H{"label": bucket.Format("Jan 02"), "value": count})
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (h *SalesHandler) ServiceRequestsChart(c *gin.Context) {
	days := chartDays(c)

	var requests []models.ServiceRequest
	if err := h.DB.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service requests"})
		return
	}

	series := make([]gin.H, 0, days)
	for _, bucket := range dayBuckets(days, time.Now()) {
		count := 0
		for _, r := range requests {
			if sameDay(r.CreatedAt, bucket) {
				count++
			}
		}
		series = append(series, gin.H{"label": bucket.Format("Jan 02"), "value": count})
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (h *SalesHandler) ListAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := h.DB.Preload("Items").Preload("Items.Product").Preload("User").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *SalesHandler) ListAllServiceRequests(c *gin.Context) {
	var requests []models.ServiceRequest
	if err := h.DB.Preload("User").Preload("Category").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_requests": requests})
}

// UpdateOrderStatus validates against the closed status set before touching
// the row; a bad value changes nothing.
func (h *SalesHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid order status %q", req.Status)})
		return
	}

	var order models.Order
	if err := h.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := h.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	notification := models.Notification{
		UserID:  order.UserID,
		Title:   "Order Update",
		Message: fmt.Sprintf("Your order status changed to %s.", req.Status),
		Type:    "order",
	}
	h.DB.Create(&notification)

	var user models.User
	if err := h.DB.First(&user, "id = ?", order.UserID).Error; err == nil {
		utils.SendOrderStatusUpdate(user.Email, user.Name, order.ID.String(), string(req.Status))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": req.Status})
}

// UpdateServiceRequestStatus lets staff set any non-empty status on any
// request.
func (h *SalesHandler) UpdateServiceRequestStatus(c *gin.Context) {
	updateServiceRequestStatus(h.DB, c, false)
}
