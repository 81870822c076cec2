package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"integrators-backend/models"
	"integrators-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	// Limit to 1 open connection to prevent SQLite concurrent access issues
	// with in-memory databases. This ensures all goroutines (including the
	// background seed job) share the same connection and see the same tables.
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)

	// Create tables using raw SQLite-compatible SQL instead of AutoMigrate,
	// because the GORM model tags use PostgreSQL-specific defaults like gen_random_uuid().
	if err := createSQLiteTables(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	os.Exit(code)
}

// freshDB returns a clean database for each test by deleting all rows.
func freshDB() *gorm.DB {
	// Delete in correct order to respect foreign keys
	testDB.Exec("DELETE FROM notifications")
	testDB.Exec("DELETE FROM service_requests")
	testDB.Exec("DELETE FROM wishlist_items")
	testDB.Exec("DELETE FROM order_items")
	testDB.Exec("DELETE FROM orders")
	testDB.Exec("DELETE FROM product_images")
	testDB.Exec("DELETE FROM products")
	testDB.Exec("DELETE FROM models")
	testDB.Exec("DELETE FROM brands")
	testDB.Exec("DELETE FROM categories")
	testDB.Exec("DELETE FROM services")
	testDB.Exec("DELETE FROM users")
	return testDB
}

// createSQLiteTables creates all tables with SQLite-compatible DDL.
func createSQLiteTables(db *gorm.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT,
			"email" TEXT NOT NULL UNIQUE,
			"password" TEXT NOT NULL,
			"phone" TEXT,
			"role" TEXT DEFAULT 'USER',
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON "users"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "services" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL UNIQUE,
			"icon" TEXT,
			"description" TEXT,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_services_deleted_at ON "services"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "categories" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"service_id" TEXT NOT NULL,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_categories_service FOREIGN KEY ("service_id") REFERENCES "services"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_name ON "categories"("name")`,
		`CREATE INDEX IF NOT EXISTS idx_categories_deleted_at ON "categories"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "brands" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"category_id" TEXT NOT NULL,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_brands_category FOREIGN KEY ("category_id") REFERENCES "categories"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_brands_deleted_at ON "brands"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "models" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"image" TEXT,
			"brand_id" TEXT NOT NULL,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_models_brand FOREIGN KEY ("brand_id") REFERENCES "brands"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_models_deleted_at ON "models"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "products" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"description" TEXT,
			"price" NUMERIC,
			"original_price" NUMERIC,
			"in_stock" INTEGER DEFAULT 1,
			"rating" REAL DEFAULT 0,
			"reviews" INTEGER DEFAULT 0,
			"view_count" INTEGER DEFAULT 0,
			"specifications" TEXT,
			"model_id" TEXT NOT NULL UNIQUE,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_products_model FOREIGN KEY ("model_id") REFERENCES "models"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_name ON "products"("name")`,
		`CREATE INDEX IF NOT EXISTS idx_products_deleted_at ON "products"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "product_images" (
			"id" TEXT PRIMARY KEY,
			"product_id" TEXT NOT NULL,
			"image_url" TEXT NOT NULL,
			"position" INTEGER DEFAULT 0,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_product_images_product FOREIGN KEY ("product_id") REFERENCES "products"("id")
		)`,

		`CREATE TABLE IF NOT EXISTS "orders" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"status" TEXT DEFAULT 'PENDING',
			"total" NUMERIC,
			"shipping_address" TEXT,
			"payment_method" TEXT,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_orders_user FOREIGN KEY ("user_id") REFERENCES "users"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_deleted_at ON "orders"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "order_items" (
			"id" TEXT PRIMARY KEY,
			"order_id" TEXT NOT NULL,
			"product_id" TEXT NOT NULL,
			"quantity" INTEGER NOT NULL,
			"price" NUMERIC,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			CONSTRAINT fk_order_items_order FOREIGN KEY ("order_id") REFERENCES "orders"("id")
		)`,

		`CREATE TABLE IF NOT EXISTS "wishlist_items" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"product_id" TEXT NOT NULL,
			"created_at" DATETIME,
			CONSTRAINT uq_wishlist UNIQUE ("user_id", "product_id")
		)`,

		`CREATE TABLE IF NOT EXISTS "service_requests" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"category_id" TEXT,
			"subject" TEXT NOT NULL,
			"description" TEXT,
			"contact_name" TEXT,
			"contact_phone" TEXT,
			"contact_email" TEXT,
			"address" TEXT,
			"status" TEXT DEFAULT 'PENDING',
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_service_requests_deleted_at ON "service_requests"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "notifications" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"title" TEXT NOT NULL,
			"message" TEXT,
			"type" TEXT,
			"read" INTEGER DEFAULT 0,
			"created_at" DATETIME,
			"deleted_at" DATETIME
		)`,
	}

	for _, ddl := range tables {
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedTestUser creates a user with the given role and password "password123".
func seedTestUser(t *testing.T, db *gorm.DB, email string, role models.Role) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

// hierarchy bundles one full catalog path for tests.
type hierarchy struct {
	Service  models.Service
	Category models.Category
	Brand    models.Brand
	Model    models.Model
	Product  models.Product
}

// seedHierarchy creates Service -> Category -> Brand -> Model -> Product.
func seedHierarchy(t *testing.T, db *gorm.DB, productName string, price int64) hierarchy {
	t.Helper()
	service := models.Service{Name: productName + " Service", Icon: "videocam"}
	if err := db.Create(&service).Error; err != nil {
		t.Fatal(err)
	}
	category := models.Category{Name: productName + " Category", ServiceID: service.ID}
	if err := db.Create(&category).Error; err != nil {
		t.Fatal(err)
	}
	brand := models.Brand{Name: productName + " Brand", CategoryID: category.ID}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatal(err)
	}
	model := models.Model{Name: productName + " Model", Image: "https://img.test/" + productName + ".jpg", BrandID: brand.ID}
	if err := db.Create(&model).Error; err != nil {
		t.Fatal(err)
	}
	product := models.Product{
		Name:    productName,
		Price:   decimal.NewFromInt(price),
		InStock: true,
		ModelID: model.ID,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatal(err)
	}
	return hierarchy{Service: service, Category: category, Brand: brand, Model: model, Product: product}
}

// doRequest performs a JSON request against the router, optionally authorized.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return resp
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
