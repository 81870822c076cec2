package handlers

import (
	"net/http"
	"testing"

	"integrators-backend/middleware"
	"integrators-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupWishlistRouter(db *gorm.DB) *gin.Engine {
	h := &WishlistHandler{DB: db}
	r := gin.New()
	wishlist := r.Group("/api/wishlist", middleware.AuthMiddleware())
	{
		wishlist.GET("", h.ListWishlist)
		wishlist.POST("", h.AddToWishlist)
		wishlist.DELETE("/:productId", h.RemoveFromWishlist)
		wishlist.GET("/contains", h.Contains)
	}
	return r
}

func TestAddToWishlist(t *testing.T) {
	db := freshDB()
	router := setupWishlistRouter(db)
	user := seedTestUser(t, db, "user@example.com", models.RoleUser)
	cam := seedHierarchy(t, db, "Dome Camera", 1500)

	w := doRequest(t, router, "POST", "/api/wishlist", gin.H{
		"product_id": cam.Product.ID,
	}, tokenFor(t, user))
	expectStatus(t, w, http.StatusCreated)

	var count int64
	db.Model(&models.WishlistItem{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 wishlist row, got %d", count)
	}
}

func TestAddToWishlistIdempotent(t *testing.T) {
	db := freshDB()
	router := setupWishlistRouter(db)
	user := seedTestUser(t, db, "user@example.com", models.RoleUser)
	cam := seedHierarchy(t, db, "Dome Camera", 1500)

	w := doRequest(t, router, "POST", "/api/wishlist", gin.H{"product_id": cam.Product.ID}, tokenFor(t, user))
	expectStatus(t, w, http.StatusCreated)

	// re-adding returns the existing row, not a duplicate
	w = doRequest(t, router, "POST", "/api/wishlist", gin.H{"product_id": cam.Product.ID}, tokenFor(t, user))
	expectStatus(t, w, http.StatusOK)

	var count int64
	db.Model(&models.WishlistItem{}).Where("user_id = ? AND product_id = ?", user.ID, cam.Product.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 wishlist row, got %d", count)
	}
}

func TestAddToWishlistUnknownProduct(t *testing.T) {
	db := freshDB()
	router := setupWishlistRouter(db)
	user := seedTestUser(t, db, "user@example.com", models.RoleUser)

	w := doRequest(t, router, "POST", "/api/wishlist", gin.H{"product_id": uuid.New()}, tokenFor(t, user))
	expectStatus(t, w, http.StatusNotFound)
}

func TestListWishlist(t *testing.T) {
	db := freshDB()
	router := setupWishlistRouter(db)
	user := seedTestUser(t, db, "user@example.com", models.RoleUser)
	other := seedTestUser(t, db, "other@example.com", models.RoleUser)
	cam := seedHierarchy(t, db, "Dome Camera", 1500)
	sw := seedHierarchy(t, db, "PoE Switch", 3200)

	for _, p := range []uuid.UUID{cam.Product.ID, sw.Product.ID} {
		w := doRequest(t, router, "POST", "/api/wishlist", gin.H{"product_id": p}, tokenFor(t, user))
		expectStatus(t, w, http.StatusCreated)
	}
	w := doRequest(t, router, "POST", "/api/wishlist", gin.H{"product_id": cam.Product.ID}, tokenFor(t, other))
	expectStatus(t, w, http.StatusCreated)

	w = doRequest(t, router, "GET", "/api/wishlist", nil, tokenFor(t, user))
	expectStatus(t, w, http.StatusOK)
	resp := parseResponse(t, w)
	products := resp["products"].([]interface{})
	if len(products) != 2 {
		t.Errorf("expected 2 wishlist products, got %d", len(products))
	}
}

func TestRemoveFromWishlist(t *testing.T) {
	db := freshDB()
	router := setupWishlistRouter(db)
	user := seedTestUser(t, db, "user@example.com", models.RoleUser)
	cam := seedHierarchy(t, db, "Dome Camera", 1500)

	w := doRequest(t, router, "POST", "/api/wishlist", gin.H{"product_id": cam.Product.ID}, tokenFor(t, user))
	expectStatus(t, w, http.StatusCreated)

	w = doRequest(t, router, "DELETE", "/api/wishlist/"+cam.Product.ID.String(), nil, tokenFor(t, user))
	expectStatus(t, w, http.StatusOK)

	// removing again is a 404
	w = doRequest(t, router, "DELETE", "/api/wishlist/"+cam.Product.ID.String(), nil, tokenFor(t, user))
	expectStatus(t, w, http.StatusNotFound)
}

func TestWishlistContains(t *testing.T) {
	db := freshDB()
	router := setupWishlistRouter(db)
	user := seedTestUser(t, db, "user@example.com", models.RoleUser)
	cam := seedHierarchy(t, db, "Dome Camera", 1500)
	sw := seedHierarchy(t, db, "PoE Switch", 3200)

	w := doRequest(t, router, "POST", "/api/wishlist", gin.H{"product_id": cam.Product.ID}, tokenFor(t, user))
	expectStatus(t, w, http.StatusCreated)

	w = doRequest(t, router, "GET", "/api/wishlist/contains?product_id="+cam.Product.ID.String(), nil, tokenFor(t, user))
	expectStatus(t, w, http.StatusOK)
	if resp := parseResponse(t, w); resp["contains"] != true {
		t.Error("expected contains true")
	}

	w = doRequest(t, router, "GET", "/api/wishlist/contains?product_id="+sw.Product.ID.String(), nil, tokenFor(t, user))
	expectStatus(t, w, http.StatusOK)
	if resp := parseResponse(t, w); resp["contains"] != false {
		t.Error("expected contains false")
	}
}
