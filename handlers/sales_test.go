package handlers

import (
	"net/http"
	"testing"
	"time"

	"integrators-backend/middleware"
	"integrators-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupSalesRouter(db *gorm.DB) *gin.Engine {
	h := &SalesHandler{DB: db}
	r := gin.New()
	sales := r.Group("/api/sales", middleware.AuthMiddleware(), middleware.SalesMiddleware())
	{
		sales.GET("/dashboard/stats", h.DashboardStats)
		sales.GET("/dashboard/revenue-chart", h.RevenueChart)
		sales.GET("/dashboard/orders-chart", h.OrdersChart)
		sales.GET("/dashboard/service-requests-chart", h.ServiceRequestsChart)
		sales.GET("/orders", h.ListAllOrders)
		sales.PUT("/orders/:id/status", h.UpdateOrderStatus)
		sales.GET("/service-requests", h.ListAllServiceRequests)
		sales.PUT("/service-requests/:id/status", h.UpdateServiceRequestStatus)
	}
	return r
}

func salesToken(t *testing.T, db *gorm.DB) string {
	t.Helper()
	staff := seedTestUser(t, db, "sales@example.com", models.RoleSales)
	return tokenFor(t, staff)
}

func seedOrder(t *testing.T, db *gorm.DB, user models.User, total int64, status models.OrderStatus, createdAt time.Time) models.Order {
	t.Helper()
	order := models.Order{
		UserID: user.ID,
		Status: status,
		Total:  decimal.NewFromInt(total),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatal(err)
	}
	db.Model(&models.Order{}).Where("id = ?", order.ID).Update("created_at", createdAt)
	return order
}

func TestSalesRoutesRequireStaffRole(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	user := seedTestUser(t, db, "user@example.com", models.RoleUser)

	w := doRequest(t, router, "GET", "/api/sales/dashboard/stats", nil, tokenFor(t, user))
	expectStatus(t, w, http.StatusForbidden)

	// ADMIN passes the sales gate too
	admin := seedTestUser(t, db, "admin@example.com", models.RoleAdmin)
	w = doRequest(t, router, "GET", "/api/sales/dashboard/stats", nil, tokenFor(t, admin))
	expectStatus(t, w, http.StatusOK)
}

func TestDashboardStats(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	token := salesToken(t, db)
	buyer := seedTestUser(t, db, "buyer@example.com", models.RoleUser)
	seedTestUser(t, db, "buyer2@example.com", models.RoleUser)

	now := time.Now()
	seedOrder(t, db, buyer, 1000, models.OrderStatusPending, now)
	seedOrder(t, db, buyer, 2500, models.OrderStatusCompleted, now.AddDate(0, 0, -3))

	for _, status := range []string{"PENDING", "IN_PROGRESS", "COMPLETED", "RESOLVED"} {
		request := models.ServiceRequest{UserID: buyer.ID, Subject: "Req " + status, Status: status}
		if err := db.Create(&request).Error; err != nil {
			t.Fatal(err)
		}
	}

	w := doRequest(t, router, "GET", "/api/sales/dashboard/stats", nil, token)
	expectStatus(t, w, http.StatusOK)
	resp := parseResponse(t, w)

	if resp["totalRevenue"] != "3500" {
		t.Errorf("expected totalRevenue 3500, got %v", resp["totalRevenue"])
	}
	if resp["todayRevenue"] != "1000" {
		t.Errorf("expected todayRevenue 1000, got %v", resp["todayRevenue"])
	}
	if resp["totalOrders"].(float64) != 2 {
		t.Errorf("expected 2 orders, got %v", resp["totalOrders"])
	}
	if resp["pendingOrders"].(float64) != 1 {
		t.Errorf("expected 1 pending order, got %v", resp["pendingOrders"])
	}
	if resp["completedOrders"].(float64) != 1 {
		t.Errorf("expected 1 completed order, got %v", resp["completedOrders"])
	}
	// COMPLETED and RESOLVED share the terminal bucket
	if resp["completedServiceRequests"].(float64) != 2 {
		t.Errorf("expected 2 completed service requests, got %v", resp["completedServiceRequests"])
	}
	if resp["pendingServiceRequests"].(float64) != 1 {
		t.Errorf("expected 1 pending service request, got %v", resp["pendingServiceRequests"])
	}
	if resp["inProgressServiceRequests"].(float64) != 1 {
		t.Errorf("expected 1 in-progress service request, got %v", resp["inProgressServiceRequests"])
	}
	// staff accounts are not customers
	if resp["totalCustomers"].(float64) != 2 {
		t.Errorf("expected 2 customers, got %v", resp["totalCustomers"])
	}
}

func TestRevenueChartBuckets(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	token := salesToken(t, db)
	buyer := seedTestUser(t, db, "buyer@example.com", models.RoleUser)

	now := time.Now()
	seedOrder(t, db, buyer, 500, models.OrderStatusPending, now)
	seedOrder(t, db, buyer, 700, models.OrderStatusPending, now)
	seedOrder(t, db, buyer, 900, models.OrderStatusPending, now.AddDate(0, 0, -2))
	// outside the window
	seedOrder(t, db, buyer, 9999, models.OrderStatusPending, now.AddDate(0, 0, -30))

	w := doRequest(t, router, "GET", "/api/sales/dashboard/revenue-chart?days=7", nil, token)
	expectStatus(t, w, http.StatusOK)
	resp := parseResponse(t, w)
	series := resp["series"].([]interface{})
	if len(series) != 7 {
		t.Fatalf("expected exactly 7 buckets, got %d", len(series))
	}

	last := series[6].(map[string]interface{})
	if last["label"] != now.Format("Jan 02") {
		t.Errorf("expected last bucket labelled today, got %v", last["label"])
	}
	if last["value"] != "1200" {
		t.Errorf("expected today's revenue 1200, got %v", last["value"])
	}
	third := series[4].(map[string]interface{})
	if third["value"] != "900" {
		t.Errorf("expected 900 two days ago, got %v", third["value"])
	}
	oldest := series[0].(map[string]interface{})
	if oldest["label"] != now.AddDate(0, 0, -6).Format("Jan 02") {
		t.Errorf("expected oldest bucket six days back, got %v", oldest["label"])
	}
}

func TestOrdersChartDefaultsAndBounds(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	token := salesToken(t, db)

	for _, query := range []string{"", "?days=0", "?days=banana", "?days=9999"} {
		w := doRequest(t, router, "GET", "/api/sales/dashboard/orders-chart"+query, nil, token)
		expectStatus(t, w, http.StatusOK)
		resp := parseResponse(t, w)
		series := resp["series"].([]interface{})
		if len(series) != 7 {
			t.Errorf("query %q: expected default 7 buckets, got %d", query, len(series))
		}
	}

	w := doRequest(t, router, "GET", "/api/sales/dashboard/orders-chart?days=30", nil, token)
	expectStatus(t, w, http.StatusOK)
	resp := parseResponse(t, w)
	series := resp["series"].([]interface{})
	if len(series) != 30 {
		t.Errorf("expected 30 buckets, got %d", len(series))
	}
}

func TestServiceRequestsChart(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	token := salesToken(t, db)
	buyer := seedTestUser(t, db, "buyer@example.com", models.RoleUser)

	request := models.ServiceRequest{UserID: buyer.ID, Subject: "Install"}
	if err := db.Create(&request).Error; err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, router, "GET", "/api/sales/dashboard/service-requests-chart?days=3", nil, token)
	expectStatus(t, w, http.StatusOK)
	resp := parseResponse(t, w)
	series := resp["series"].([]interface{})
	if len(series) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(series))
	}
	today := series[2].(map[string]interface{})
	if today["value"].(float64) != 1 {
		t.Errorf("expected 1 request today, got %v", today["value"])
	}
}

func TestListAllOrdersSeesEveryUser(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	token := salesToken(t, db)
	alice := seedTestUser(t, db, "alice@example.com", models.RoleUser)
	bob := seedTestUser(t, db, "bob@example.com", models.RoleUser)
	now := time.Now()
	seedOrder(t, db, alice, 100, models.OrderStatusPending, now)
	seedOrder(t, db, bob, 200, models.OrderStatusPending, now)

	w := doRequest(t, router, "GET", "/api/sales/orders", nil, token)
	expectStatus(t, w, http.StatusOK)
	resp := parseResponse(t, w)
	orders := resp["orders"].([]interface{})
	if len(orders) != 2 {
		t.Errorf("expected 2 orders across all users, got %d", len(orders))
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	token := salesToken(t, db)
	buyer := seedTestUser(t, db, "buyer@example.com", models.RoleUser)
	order := seedOrder(t, db, buyer, 100, models.OrderStatusPending, time.Now())

	w := doRequest(t, router, "PUT", "/api/sales/orders/"+order.ID.String()+"/status",
		gin.H{"status": "SHIPPED"}, token)
	expectStatus(t, w, http.StatusOK)

	var updated models.Order
	db.First(&updated, "id = ?", order.ID)
	if updated.Status != models.OrderStatusShipped {
		t.Errorf("expected SHIPPED, got %s", updated.Status)
	}

	// the buyer gets a notification
	var count int64
	db.Model(&models.Notification{}).Where("user_id = ?", buyer.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 notification, got %d", count)
	}
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	token := salesToken(t, db)
	buyer := seedTestUser(t, db, "buyer@example.com", models.RoleUser)
	order := seedOrder(t, db, buyer, 100, models.OrderStatusPending, time.Now())

	w := doRequest(t, router, "PUT", "/api/sales/orders/"+order.ID.String()+"/status",
		gin.H{"status": "BOGUS"}, token)
	expectStatus(t, w, http.StatusBadRequest)

	// nothing changed, nobody notified
	var updated models.Order
	db.First(&updated, "id = ?", order.ID)
	if updated.Status != models.OrderStatusPending {
		t.Errorf("expected status untouched, got %s", updated.Status)
	}
	var count int64
	db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no notifications, got %d", count)
	}
}

func TestStaffUpdateServiceRequestStatusAnyUser(t *testing.T) {
	db := freshDB()
	router := setupSalesRouter(db)
	token := salesToken(t, db)
	buyer := seedTestUser(t, db, "buyer@example.com", models.RoleUser)

	request := models.ServiceRequest{UserID: buyer.ID, Subject: "Install"}
	if err := db.Create(&request).Error; err != nil {
		t.Fatal(err)
	}

	// staff can set ad-hoc statuses on other users' requests
	w := doRequest(t, router, "PUT", "/api/sales/service-requests/"+request.ID.String()+"/status",
		gin.H{"status": "RESOLVED"}, token)
	expectStatus(t, w, http.StatusOK)

	var updated models.ServiceRequest
	db.First(&updated, "id = ?", request.ID)
	if updated.Status != "RESOLVED" {
		t.Errorf("expected RESOLVED, got %s", updated.Status)
	}
}
