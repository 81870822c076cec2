package seed

// The taxonomy is declarative data consumed by the seeder. Keeping the fixture
// separate from the upsert algorithm lets tests drive the seeder with small
// synthetic taxonomies.

type ProductSpec struct {
	Name          string
	Description   string
	Price         string // decimal string
	OriginalPrice string // empty means no strike-through price
	InStock       bool
	Rating        float64
	Reviews       int
	Specs         map[string]string
}

type ModelSpec struct {
	Name    string
	Image   string
	Product *ProductSpec
}

type BrandSpec struct {
	Name   string
	Models []ModelSpec
}

type ServiceSpec struct {
	Name        string
	Icon        string
	Description string
	Categories  []string
}

// Batch is one independently-applied unit of product seeding, scoped to a
// single (service, category) pair. A failure in one batch never aborts its
// siblings.
type Batch struct {
	Name     string
	Service  string
	Category string
	Brands   []BrandSpec
}

type Taxonomy struct {
	Services []ServiceSpec
	Batches  []Batch
}

// Counts holds the five per-level totals the fast path compares against live
// storage.
type Counts struct {
	Services   int64
	Categories int64
	Brands     int64
	Models     int64
	Products   int64
}

func (c Counts) Equal(other Counts) bool {
	return c == other
}

// ExpectedCounts derives the post-seed totals from the taxonomy itself. Brand
// and model names are deduplicated within their parent scope, matching the
// seeder's reuse-if-found behavior when two batches touch the same node.
func (t *Taxonomy) ExpectedCounts() Counts {
	var counts Counts
	counts.Services = int64(len(t.Services))
	for _, svc := range t.Services {
		counts.Categories += int64(len(svc.Categories))
	}

	brands := make(map[string]bool)
	productModels := make(map[string]bool)
	seenModels := make(map[string]bool)
	for _, batch := range t.Batches {
		scope := batch.Service + "\x00" + batch.Category
		for _, brand := range batch.Brands {
			brandKey := scope + "\x00" + brand.Name
			brands[brandKey] = true
			for _, model := range brand.Models {
				modelKey := brandKey + "\x00" + model.Name
				seenModels[modelKey] = true
				if model.Product != nil {
					productModels[modelKey] = true
				}
			}
		}
	}
	counts.Brands = int64(len(brands))
	counts.Models = int64(len(seenModels))
	counts.Products = int64(len(productModels))
	return counts
}
