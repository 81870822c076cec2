package handlers

import (
	"net/http"
	"testing"

	"integrators-backend/middleware"
	"integrators-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	h := &AuthHandler{DB: db}
	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/sales/login", h.SalesLogin)
		auth.POST("/admin/login", h.AdminLogin)
		auth.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
	return r
}

func TestRegisterSuccess(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	w := doRequest(t, router, "POST", "/api/auth/register", gin.H{
		"email":    "new@example.com",
		"password": "secret123",
		"name":     "New User",
		"phone":    "9876543210",
	}, "")

	expectStatus(t, w, http.StatusCreated)
	resp := parseResponse(t, w)
	if resp["token"] == nil || resp["token"] == "" {
		t.Error("expected token in response")
	}
	user, ok := resp["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected user object in response")
	}
	if user["email"] != "new@example.com" {
		t.Errorf("expected email new@example.com, got %v", user["email"])
	}
	if user["role"] != "USER" {
		t.Errorf("expected role USER, got %v", user["role"])
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "new@example.com").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user row, got %d", count)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)
	seedTestUser(t, db, "taken@example.com", models.RoleUser)

	w := doRequest(t, router, "POST", "/api/auth/register", gin.H{
		"email":    "taken@example.com",
		"password": "secret123",
	}, "")

	expectStatus(t, w, http.StatusConflict)
	resp := parseResponse(t, w)
	if resp["error"] != "Email already registered" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

func TestRegisterValidation(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"password": "secret123"}},
		{"invalid email", gin.H{"email": "not-an-email", "password": "secret123"}},
		{"short password", gin.H{"email": "a@b.com", "password": "12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, "POST", "/api/auth/register", tc.body, "")
			expectStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)
	seedTestUser(t, db, "user@example.com", models.RoleUser)

	w := doRequest(t, router, "POST", "/api/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "password123",
	}, "")

	expectStatus(t, w, http.StatusOK)
	resp := parseResponse(t, w)
	if resp["success"] != true {
		t.Error("expected success true")
	}
	if resp["token"] == nil || resp["token"] == "" {
		t.Error("expected token in response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)
	seedTestUser(t, db, "user@example.com", models.RoleUser)

	w := doRequest(t, router, "POST", "/api/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "wrong-password",
	}, "")

	expectStatus(t, w, http.StatusBadRequest)
	resp := parseResponse(t, w)
	if resp["success"] != false {
		t.Error("expected success false")
	}
	if resp["error"] != "Invalid email or password" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	w := doRequest(t, router, "POST", "/api/auth/login", gin.H{
		"email":    "ghost@example.com",
		"password": "password123",
	}, "")

	expectStatus(t, w, http.StatusBadRequest)
	resp := parseResponse(t, w)
	if resp["error"] != "Invalid email or password" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

func TestSalesLoginRoleGate(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)
	seedTestUser(t, db, "sales@example.com", models.RoleSales)
	seedTestUser(t, db, "admin@example.com", models.RoleAdmin)
	seedTestUser(t, db, "user@example.com", models.RoleUser)

	// SALES and ADMIN may use the sales portal
	for _, email := range []string{"sales@example.com", "admin@example.com"} {
		w := doRequest(t, router, "POST", "/api/auth/sales/login", gin.H{
			"email":    email,
			"password": "password123",
		}, "")
		expectStatus(t, w, http.StatusOK)
	}

	// a plain USER is rejected
	w := doRequest(t, router, "POST", "/api/auth/sales/login", gin.H{
		"email":    "user@example.com",
		"password": "password123",
	}, "")
	expectStatus(t, w, http.StatusBadRequest)
	resp := parseResponse(t, w)
	if resp["error"] != "Access denied. Sales login only." {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

func TestAdminLoginRoleGate(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)
	seedTestUser(t, db, "admin@example.com", models.RoleAdmin)
	seedTestUser(t, db, "sales@example.com", models.RoleSales)

	w := doRequest(t, router, "POST", "/api/auth/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "password123",
	}, "")
	expectStatus(t, w, http.StatusOK)

	// SALES is not enough for the admin portal
	w = doRequest(t, router, "POST", "/api/auth/admin/login", gin.H{
		"email":    "sales@example.com",
		"password": "password123",
	}, "")
	expectStatus(t, w, http.StatusBadRequest)
	resp := parseResponse(t, w)
	if resp["error"] != "Access denied. Admin login only." {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

func TestMe(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)
	user := seedTestUser(t, db, "me@example.com", models.RoleUser)

	w := doRequest(t, router, "GET", "/api/auth/me", nil, tokenFor(t, user))
	expectStatus(t, w, http.StatusOK)
	resp := parseResponse(t, w)
	payload, ok := resp["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected user object in response")
	}
	if payload["email"] != "me@example.com" {
		t.Errorf("expected email me@example.com, got %v", payload["email"])
	}

	// without a token the endpoint is closed
	w = doRequest(t, router, "GET", "/api/auth/me", nil, "")
	expectStatus(t, w, http.StatusUnauthorized)
}
