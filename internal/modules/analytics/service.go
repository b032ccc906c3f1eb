package analytics

import (
	"math"
	"sort"

	"github.com/fliphawk/flipship-backend/internal/modules/catalog"
)

const topCategoryLimit = 5

// CategoryCount is one entry of the top-categories rollup.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Summary is the catalog-wide analytics rollup. Every field is well
// defined on an empty catalog; no rate ever divides by zero.
type Summary struct {
	TotalProducts       int             `json:"total_products"`
	TotalRevenue        float64         `json:"total_revenue"`
	AverageProfitMargin float64         `json:"average_profit_margin"`
	TopCategories       []CategoryCount `json:"top_categories"`
	ConversionRate      float64         `json:"conversion_rate"`
	KnownCategories     []string        `json:"known_categories"`
	KnownTagCount       int             `json:"known_tag_count"`
}

// Service computes analytics on demand from the catalog's current state.
type Service interface {
	Summary() Summary
}

type service struct {
	store *catalog.Store
}

func NewService(store *catalog.Store) Service {
	return &service{store: store}
}

// Summary aggregates across active products only. Categories are counted
// in insertion order so the top-5 tie break is first-encountered-first.
func (s *service) Summary() Summary {
	products := s.store.Snapshot()

	var (
		active         int
		revenue        float64
		profitPctSum   float64
		views          int64
		purchases      int64
		categoryCounts = map[string]int{}
		categoryOrder  []string
	)

	for _, p := range products {
		if p.Status != catalog.StatusActive {
			continue
		}
		active++
		revenue += p.Metrics.Revenue
		profitPctSum += p.ProfitPercentage
		views += p.Metrics.Views
		purchases += p.Metrics.Purchases

		if p.Category != "" {
			if _, seen := categoryCounts[p.Category]; !seen {
				categoryOrder = append(categoryOrder, p.Category)
			}
			categoryCounts[p.Category]++
		}
	}

	top := make([]CategoryCount, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		top = append(top, CategoryCount{Category: c, Count: categoryCounts[c]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topCategoryLimit {
		top = top[:topCategoryLimit]
	}

	summary := Summary{
		TotalProducts:   active,
		TotalRevenue:    round2(revenue),
		TopCategories:   top,
		KnownCategories: s.store.Categories(),
		KnownTagCount:   s.store.TagCount(),
	}
	if active > 0 {
		summary.AverageProfitMargin = round2(profitPctSum / float64(active))
	}
	if views > 0 {
		summary.ConversionRate = round2(float64(purchases) / float64(views) * 100)
	}
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
