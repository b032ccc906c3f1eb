package catalog

import (
	"errors"
	"time"

	"github.com/fliphawk/flipship-backend/internal/modules/listing"
)

// Product lifecycle status. Creation only ever produces StatusActive;
// StatusArchived exists for operator-driven delisting.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Performance metric names accepted by UpdateMetric.
const (
	MetricViews     = "views"
	MetricClicks    = "clicks"
	MetricAddToCart = "add_to_cart"
	MetricPurchases = "purchases"
	MetricRevenue   = "revenue"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrUnknownMetric = errors.New("unknown metric")
)

// Metrics are the mutable post-creation performance counters. Conversion
// rate is always recomputed from purchases and views, never set directly.
type Metrics struct {
	Views          int64   `json:"views"`
	Clicks         int64   `json:"clicks"`
	AddToCart      int64   `json:"add_to_cart"`
	Purchases      int64   `json:"purchases"`
	ConversionRate float64 `json:"conversion_rate"`
	Revenue        float64 `json:"revenue"`
}

// Product is a fully derived, catalog-resident storefront entry. Identity
// (ID, SKU) is assigned once at creation and never changes; after creation
// only the performance metrics and UpdatedAt may move.
type Product struct {
	ID     string `json:"id"`
	SKU    string `json:"sku"`
	Handle string `json:"handle"`

	Title            string  `json:"title"`
	OptimizedTitle   string  `json:"optimized_title"`
	SalePrice        float64 `json:"sale_price"`
	CompareAtPrice   float64 `json:"compare_at_price"`
	CostPrice        float64 `json:"cost_price"`
	ProfitMargin     float64 `json:"profit_margin"`
	ProfitPercentage float64 `json:"profit_percentage"`

	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Tags        []string `json:"tags"`
	Condition   string   `json:"condition"`

	SourcePlatform  string  `json:"source_platform"`
	SourceURL       string  `json:"source_url"`
	SourceItemID    string  `json:"source_item_id"`
	SellerRating    float64 `json:"seller_rating"`
	ConfidenceScore float64 `json:"confidence_score"`

	SEO listing.SEO `json:"seo"`

	Quantity       int  `json:"quantity"`
	TrackQuantity  bool `json:"track_quantity"`
	AllowBackorder bool `json:"allow_backorder"`

	Weight           float64 `json:"weight"`
	RequiresShipping bool    `json:"requires_shipping"`
	ShippingCost     float64 `json:"shipping_cost"`
	ProcessingTime   string  `json:"processing_time"`
	ShippingTime     string  `json:"shipping_time"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ScanID             string  `json:"scan_id"`
	ScanDate           string  `json:"scan_date"`
	MatchedKeyword     string  `json:"matched_keyword"`
	OriginalConfidence float64 `json:"original_confidence"`

	Metrics Metrics `json:"metrics"`
}

// Pagination describes one page of a filtered product listing.
type Pagination struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}
