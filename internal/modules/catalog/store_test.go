package catalog

import (
	"fmt"
	"testing"
	"time"
)

func seedProduct(id, category, status string, createdAt time.Time, margin, confidence float64) *Product {
	return &Product{
		ID:                 id,
		Category:           category,
		Status:             status,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		ProfitMargin:       margin,
		OriginalConfidence: confidence,
		Tags:               []string{"seed"},
	}
}

func TestStore_GetByID(t *testing.T) {
	store := NewStore()
	store.Insert(seedProduct("p1", "Tech", StatusActive, time.Now(), 10, 50))

	if _, err := store.GetByID("p1"); err != nil {
		t.Fatalf("expected product, got %v", err)
	}
	if _, err := store.GetByID("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListFiltersAndSorts(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Insert(seedProduct("old-tech", "Tech", StatusActive, base, 10, 50))
	store.Insert(seedProduct("new-tech", "Tech", StatusActive, base.Add(time.Hour), 10, 50))
	store.Insert(seedProduct("fashion", "Fashion", StatusActive, base.Add(2*time.Hour), 10, 50))
	store.Insert(seedProduct("archived", "Tech", StatusArchived, base.Add(3*time.Hour), 10, 50))

	products, pagination := store.List(1, 10, "tech", StatusActive)
	if len(products) != 2 {
		t.Fatalf("expected 2 tech products, got %d", len(products))
	}
	if products[0].ID != "new-tech" || products[1].ID != "old-tech" {
		t.Fatalf("expected newest first, got %s then %s", products[0].ID, products[1].ID)
	}
	if pagination.TotalItems != 2 || pagination.TotalPages != 1 {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}

	all, _ := store.List(1, 10, "all", StatusActive)
	if len(all) != 3 {
		t.Fatalf("wildcard category: expected 3 active products, got %d", len(all))
	}

	archived, _ := store.List(1, 10, "", StatusArchived)
	if len(archived) != 1 || archived[0].ID != "archived" {
		t.Fatalf("status filter: expected the archived product, got %v", archived)
	}
}

func TestStore_ListClampsDegeneratePaging(t *testing.T) {
	store := NewStore()
	store.Insert(seedProduct("p1", "Tech", StatusActive, time.Now(), 10, 50))

	products, pagination := store.List(0, -5, "", "")
	if pagination.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", pagination.Page)
	}
	if len(products) != 1 {
		t.Fatalf("expected the product back, got %d", len(products))
	}

	empty, pg := store.List(99, 10, "", "")
	if len(empty) != 0 || pg.HasNext {
		t.Fatalf("page past the end must be empty with no next page, got %v %+v", empty, pg)
	}
	if pg.HasPrevious {
		t.Fatalf("page past the end must not claim a previous page: %+v", pg)
	}
}

func TestStore_PaginationReconstructsFilteredSet(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 23; i++ {
		store.Insert(seedProduct(fmt.Sprintf("p%02d", i), "Tech", StatusActive, base.Add(time.Duration(i)*time.Minute), 10, 50))
	}

	full, _ := store.List(1, 23, "tech", StatusActive)

	var paged []Product
	pageSize := 5
	for page := 1; ; page++ {
		products, pagination := store.List(page, pageSize, "tech", StatusActive)
		paged = append(paged, products...)
		if pagination.TotalPages != 5 {
			t.Fatalf("expected 5 total pages, got %d", pagination.TotalPages)
		}
		if pagination.HasPrevious != (page > 1) {
			t.Fatalf("page %d: wrong HasPrevious", page)
		}
		if !pagination.HasNext {
			break
		}
	}

	if len(paged) != len(full) {
		t.Fatalf("pages reconstruct %d products, expected %d", len(paged), len(full))
	}
	for i := range full {
		if paged[i].ID != full[i].ID {
			t.Fatalf("position %d: got %s, expected %s", i, paged[i].ID, full[i].ID)
		}
	}
}

func TestStore_FeaturedSelectionAndOrder(t *testing.T) {
	store := NewStore()
	now := time.Now()
	store.Insert(seedProduct("low-margin", "Tech", StatusActive, now, 30, 85))
	store.Insert(seedProduct("high-margin", "Tech", StatusActive, now, 40, 80))
	store.Insert(seedProduct("low-confidence", "Tech", StatusActive, now, 99, 79))
	store.Insert(seedProduct("thin-margin", "Tech", StatusActive, now, 24.99, 95))
	store.Insert(seedProduct("archived", "Tech", StatusArchived, now, 99, 99))

	featured := store.Featured(10)
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured products, got %d", len(featured))
	}
	if featured[0].ID != "high-margin" || featured[1].ID != "low-margin" {
		t.Fatalf("expected margin-descending order, got %s then %s", featured[0].ID, featured[1].ID)
	}

	if got := store.Featured(1); len(got) != 1 || got[0].ID != "high-margin" {
		t.Fatalf("featured(1) should return the top product, got %v", got)
	}
}

func TestStore_FeaturedConfidenceBreaksTies(t *testing.T) {
	store := NewStore()
	now := time.Now()
	store.Insert(seedProduct("lower", "Tech", StatusActive, now, 50, 82))
	store.Insert(seedProduct("higher", "Tech", StatusActive, now, 50, 97))

	featured := store.Featured(2)
	if featured[0].ID != "higher" {
		t.Fatalf("expected confidence tie-break, got %s first", featured[0].ID)
	}
}

func TestStore_UpdateMetric(t *testing.T) {
	store := NewStore()
	created := time.Now().Add(-time.Hour)
	store.Insert(seedProduct("p1", "Tech", StatusActive, created, 10, 50))

	if _, err := store.UpdateMetric("missing", MetricViews, 1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.UpdateMetric("p1", "bogus", 1); err != ErrUnknownMetric {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}

	for i := 0; i < 4; i++ {
		if _, err := store.UpdateMetric("p1", MetricViews, 1); err != nil {
			t.Fatalf("views update: %v", err)
		}
	}
	p, err := store.UpdateMetric("p1", MetricPurchases, 1)
	if err != nil {
		t.Fatalf("purchases update: %v", err)
	}
	if p.Metrics.Views != 4 || p.Metrics.Purchases != 1 {
		t.Fatalf("unexpected counters: %+v", p.Metrics)
	}
	if p.Metrics.ConversionRate != 25 {
		t.Fatalf("expected conversion rate 25, got %.2f", p.Metrics.ConversionRate)
	}
	if !p.UpdatedAt.After(created) {
		t.Fatal("UpdatedAt must move forward on metric updates")
	}

	p, _ = store.UpdateMetric("p1", MetricRevenue, 19.99)
	if p.Metrics.Revenue != 19.99 {
		t.Fatalf("expected revenue 19.99, got %.2f", p.Metrics.Revenue)
	}
}

func TestStore_UpdateMetricMonotonic(t *testing.T) {
	store := NewStore()
	store.Insert(seedProduct("p1", "Tech", StatusActive, time.Now(), 10, 50))

	var last int64
	for i := 0; i < 10; i++ {
		p, err := store.UpdateMetric("p1", MetricClicks, 1)
		if err != nil {
			t.Fatalf("clicks update: %v", err)
		}
		if p.Metrics.Clicks <= last {
			t.Fatalf("counter went from %d to %d", last, p.Metrics.Clicks)
		}
		last = p.Metrics.Clicks
	}
}

func TestStore_AccumulatedSets(t *testing.T) {
	store := NewStore()
	store.Insert(&Product{ID: "a", Category: "Tech", Status: StatusActive, Tags: []string{"tech", "new"}})
	store.Insert(&Product{ID: "b", Category: "Fashion", Status: StatusActive, Tags: []string{"fashion", "new"}})

	categories := store.Categories()
	if len(categories) != 2 || categories[0] != "fashion" || categories[1] != "tech" {
		t.Fatalf("unexpected categories: %v", categories)
	}
	if store.TagCount() != 3 {
		t.Fatalf("expected 3 distinct tags, got %d", store.TagCount())
	}
}
