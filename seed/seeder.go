package seed

import (
	"errors"
	"fmt"
	"log"
	"os"

	"integrators-backend/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder populates the catalog hierarchy and default users. Running it is
// idempotent: every node is looked up by name within its parent scope and
// reused when found, so repeated runs converge on the same rows.
type Seeder struct {
	db       *gorm.DB
	taxonomy *Taxonomy
}

func New(db *gorm.DB) *Seeder {
	return &Seeder{db: db, taxonomy: DefaultTaxonomy()}
}

// NewWithTaxonomy runs the same algorithm against a caller-supplied taxonomy.
func NewWithTaxonomy(db *gorm.DB, taxonomy *Taxonomy) *Seeder {
	return &Seeder{db: db, taxonomy: taxonomy}
}

// BatchResult records the outcome of one product batch. A failed batch never
// aborts the run; the error is collected here instead.
type BatchResult struct {
	Batch string `json:"batch"`
	Err   error  `json:"-"`
}

func (r BatchResult) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

type Result struct {
	Skipped bool          `json:"skipped"`
	Batches []BatchResult `json:"batches"`
	Counts  Counts        `json:"counts"`
}

// Failed returns the batches that ended in error.
func (r *Result) Failed() []BatchResult {
	var failed []BatchResult
	for _, b := range r.Batches {
		if b.Err != nil {
			failed = append(failed, b)
		}
	}
	return failed
}

// Run seeds default users, then the catalog. When the five per-level row
// counts already match the taxonomy's expected totals the catalog pass is
// skipped entirely, with zero writes.
func (s *Seeder) Run() (*Result, error) {
	if err := s.seedDefaultUsers(); err != nil {
		return nil, fmt.Errorf("seeding default users: %w", err)
	}

	current, err := s.currentCounts()
	if err != nil {
		return nil, fmt.Errorf("counting catalog rows: %w", err)
	}
	expected := s.taxonomy.ExpectedCounts()
	if current.Equal(expected) {
		log.Printf("Catalog already seeded (%d services, %d products), skipping", current.Services, current.Products)
		return &Result{Skipped: true, Counts: current}, nil
	}

	result := &Result{}
	for _, svc := range s.taxonomy.Services {
		service, err := s.ensureService(svc)
		if err != nil {
			return nil, fmt.Errorf("seeding service %q: %w", svc.Name, err)
		}
		for _, catName := range svc.Categories {
			if _, err := s.ensureCategory(service, catName); err != nil {
				return nil, fmt.Errorf("seeding category %q under %q: %w", catName, svc.Name, err)
			}
		}
	}

	for _, batch := range s.taxonomy.Batches {
		res := BatchResult{Batch: batch.Name}
		if err := s.applyBatch(batch); err != nil {
			res.Err = err
			log.Printf("Seed batch %q failed: %v", batch.Name, err)
		}
		result.Batches = append(result.Batches, res)
	}

	final, err := s.currentCounts()
	if err != nil {
		return nil, fmt.Errorf("counting catalog rows after seed: %w", err)
	}
	result.Counts = final
	log.Printf("Catalog seeded: %d services, %d categories, %d brands, %d models, %d products",
		final.Services, final.Categories, final.Brands, final.Models, final.Products)
	return result, nil
}

func (s *Seeder) currentCounts() (Counts, error) {
	var c Counts
	for _, pair := range []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Service{}, &c.Services},
		{&models.Category{}, &c.Categories},
		{&models.Brand{}, &c.Brands},
		{&models.Model{}, &c.Models},
		{&models.Product{}, &c.Products},
	} {
		if err := s.db.Model(pair.model).Count(pair.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}

func (s *Seeder) seedDefaultUsers() error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" {
		adminEmail = "admin@integrators.com"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existing models.User
	err := s.db.Where("email = ?", adminEmail).First(&existing).Error
	switch {
	case err == nil:
		// Promote a pre-existing account so the known admin login always works.
		if existing.Role != models.RoleAdmin {
			if err := s.db.Model(&existing).Update("role", models.RoleAdmin).Error; err != nil {
				return err
			}
			log.Printf("Promoted existing user %s to ADMIN", adminEmail)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.createUser("Admin", adminEmail, adminPassword, models.RoleAdmin); err != nil {
			return err
		}
		log.Printf("Default admin created: %s", adminEmail)
	default:
		return err
	}

	if err := s.ensureUser("Test User", "test@test.com", "test123", models.RoleUser); err != nil {
		return err
	}
	return s.ensureUser("Sales Team", "sales@sanjaycomm.com", "sales123", models.RoleSales)
}

func (s *Seeder) ensureUser(name, email, password string, role models.Role) error {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.createUser(name, email, password, role); err != nil {
		return err
	}
	log.Printf("Default %s user created: %s", role, email)
	return nil
}

func (s *Seeder) createUser(name, email, password string, role models.Role) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	return s.db.Create(&user).Error
}

func (s *Seeder) applyBatch(batch Batch) error {
	var service models.Service
	if err := s.db.Where("name = ?", batch.Service).First(&service).Error; err != nil {
		return fmt.Errorf("service %q not found: %w", batch.Service, err)
	}
	var category models.Category
	err := s.db.Where("service_id = ? AND name = ?", service.ID, batch.Category).First(&category).Error
	if err != nil {
		return fmt.Errorf("category %q not found under %q: %w", batch.Category, batch.Service, err)
	}

	for _, brandSpec := range batch.Brands {
		brand, err := s.ensureBrand(category, brandSpec.Name)
		if err != nil {
			return err
		}
		for _, modelSpec := range brandSpec.Models {
			model, err := s.ensureModel(brand, modelSpec)
			if err != nil {
				return err
			}
			if modelSpec.Product == nil {
				continue
			}
			if err := s.ensureProduct(model, *modelSpec.Product); err != nil {
				return err
			}
		}
	}
	return nil
}

// The ensure* methods implement reuse-if-found: an exact name match within the
// parent scope returns the existing row untouched, attributes included.

func (s *Seeder) ensureService(spec ServiceSpec) (models.Service, error) {
	var service models.Service
	err := s.db.Where("name = ?", spec.Name).First(&service).Error
	if err == nil {
		return service, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Service{}, err
	}
	service = models.Service{
		Name:        spec.Name,
		Icon:        spec.Icon,
		Description: spec.Description,
	}
	if err := s.db.Create(&service).Error; err != nil {
		return models.Service{}, err
	}
	return service, nil
}

func (s *Seeder) ensureCategory(service models.Service, name string) (models.Category, error) {
	var category models.Category
	err := s.db.Where("service_id = ? AND name = ?", service.ID, name).First(&category).Error
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, err
	}
	category = models.Category{Name: name, ServiceID: service.ID}
	if err := s.db.Create(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *Seeder) ensureBrand(category models.Category, name string) (models.Brand, error) {
	var brand models.Brand
	err := s.db.Where("category_id = ? AND name = ?", category.ID, name).First(&brand).Error
	if err == nil {
		return brand, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Brand{}, err
	}
	brand = models.Brand{Name: name, CategoryID: category.ID}
	if err := s.db.Create(&brand).Error; err != nil {
		return models.Brand{}, err
	}
	return brand, nil
}

func (s *Seeder) ensureModel(brand models.Brand, spec ModelSpec) (models.Model, error) {
	var model models.Model
	err := s.db.Where("brand_id = ? AND name = ?", brand.ID, spec.Name).First(&model).Error
	if err == nil {
		return model, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Model{}, err
	}
	model = models.Model{Name: spec.Name, Image: spec.Image, BrandID: brand.ID}
	if err := s.db.Create(&model).Error; err != nil {
		return models.Model{}, err
	}
	return model, nil
}

func (s *Seeder) ensureProduct(model models.Model, spec ProductSpec) error {
	var existing models.Product
	err := s.db.Where("model_id = ?", model.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	price, err := decimal.NewFromString(spec.Price)
	if err != nil {
		return fmt.Errorf("product %q has invalid price %q: %w", spec.Name, spec.Price, err)
	}
	var originalPrice decimal.NullDecimal
	if spec.OriginalPrice != "" {
		op, err := decimal.NewFromString(spec.OriginalPrice)
		if err != nil {
			return fmt.Errorf("product %q has invalid original price %q: %w", spec.Name, spec.OriginalPrice, err)
		}
		originalPrice = decimal.NewNullDecimal(op)
	}

	specs := datatypes.JSONMap{}
	for k, v := range spec.Specs {
		specs[k] = v
	}

	product := models.Product{
		Name:           spec.Name,
		Description:    spec.Description,
		Price:          price,
		OriginalPrice:  originalPrice,
		InStock:        spec.InStock,
		Rating:         spec.Rating,
		Reviews:        spec.Reviews,
		Specifications: specs,
		ModelID:        model.ID,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return err
	}

	if model.Image != "" {
		image := models.ProductImage{ProductID: product.ID, ImageURL: model.Image, Position: 0}
		if err := s.db.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}
