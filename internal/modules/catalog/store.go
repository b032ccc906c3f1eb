package catalog

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	defaultPageSize     = 20
	defaultFeaturedSize = 10

	featuredMinConfidence = 80
	featuredMinMargin     = 25
)

// Store is the in-memory catalog: an insertion-ordered product list with
// an id index and the accumulated category/tag sets. A single RWMutex
// guards all mutation (Insert, UpdateMetric) against concurrent reads.
type Store struct {
	mu         sync.RWMutex
	products   []*Product
	byID       map[string]*Product
	categories map[string]struct{}
	tags       map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		byID:       make(map[string]*Product),
		categories: make(map[string]struct{}),
		tags:       make(map[string]struct{}),
	}
}

// Insert appends a product, indexes it by id and unions its category and
// tags into the accumulated sets. Uniqueness of the id is the assembler's
// responsibility.
func (s *Store) Insert(p *Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
	s.byID[p.ID] = p
	if p.Category != "" {
		s.categories[strings.ToLower(p.Category)] = struct{}{}
	}
	for _, tag := range p.Tags {
		s.tags[tag] = struct{}{}
	}
}

// GetByID returns a copy of the product, or ErrNotFound.
func (s *Store) GetByID(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return *p, nil
}

// List returns one page of products filtered by status and category,
// newest first. Category "" or "all" matches everything; an empty status
// defaults to active. Page and page size are clamped, never rejected.
func (s *Store) List(page, pageSize int, category, status string) ([]Product, Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if status == "" {
		status = StatusActive
	}
	wantCategory := strings.ToLower(category)
	anyCategory := wantCategory == "" || wantCategory == "all"

	s.mu.RLock()
	filtered := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Status != status {
			continue
		}
		if !anyCategory && strings.ToLower(p.Category) != wantCategory {
			continue
		}
		filtered = append(filtered, *p)
	}
	s.mu.RUnlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return filtered[start:end], Pagination{
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && page <= totalPages,
	}
}

// Featured returns up to limit active products with confidence >= 80 and
// profit margin >= 25, best margin first, confidence breaking ties.
func (s *Store) Featured(limit int) []Product {
	if limit < 1 {
		limit = defaultFeaturedSize
	}

	s.mu.RLock()
	picks := make([]Product, 0, limit)
	for _, p := range s.products {
		if p.Status != StatusActive {
			continue
		}
		if p.OriginalConfidence < featuredMinConfidence || p.ProfitMargin < featuredMinMargin {
			continue
		}
		picks = append(picks, *p)
	}
	s.mu.RUnlock()

	sort.SliceStable(picks, func(i, j int) bool {
		if picks[i].ProfitMargin != picks[j].ProfitMargin {
			return picks[i].ProfitMargin > picks[j].ProfitMargin
		}
		return picks[i].OriginalConfidence > picks[j].OriginalConfidence
	})

	if len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}

// UpdateMetric increments one performance counter by delta, recomputes
// the conversion rate and bumps UpdatedAt. Counter metrics never move by
// fractional amounts; revenue is a currency accumulator.
func (s *Store) UpdateMetric(id, metric string, delta float64) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}

	switch metric {
	case MetricViews:
		p.Metrics.Views += int64(delta)
	case MetricClicks:
		p.Metrics.Clicks += int64(delta)
	case MetricAddToCart:
		p.Metrics.AddToCart += int64(delta)
	case MetricPurchases:
		p.Metrics.Purchases += int64(delta)
	case MetricRevenue:
		p.Metrics.Revenue = round2(p.Metrics.Revenue + delta)
	default:
		return Product{}, ErrUnknownMetric
	}

	if p.Metrics.Views > 0 {
		p.Metrics.ConversionRate = round2(float64(p.Metrics.Purchases) / float64(p.Metrics.Views) * 100)
	} else {
		p.Metrics.ConversionRate = 0
	}
	p.UpdatedAt = time.Now().UTC()

	return *p, nil
}

// Snapshot copies every product in insertion order. Used by the analytics
// aggregator so rollups never race metric updates.
func (s *Store) Snapshot() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = *p
	}
	return out
}

// Categories returns the sorted set of categories ever inserted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.categories))
	for c := range s.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// TagCount reports how many distinct tags the catalog has ever seen.
func (s *Store) TagCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tags)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
