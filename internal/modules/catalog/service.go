package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"github.com/fliphawk/flipship-backend/internal/modules/listing"
	"github.com/fliphawk/flipship-backend/internal/modules/pricing"
	"github.com/fliphawk/flipship-backend/internal/modules/sourcing"
)

// Service assembles storefront products out of sourced opportunities and
// fronts the catalog store for all read and metric operations.
type Service interface {
	CreateProduct(ctx context.Context, opp sourcing.Opportunity) (Product, error)
	BulkCreate(ctx context.Context, opps []sourcing.Opportunity) BulkResult
	GetProduct(id string) (Product, error)
	ListProducts(page, pageSize int, category, status string) ([]Product, Pagination)
	FeaturedProducts(limit int) []Product
	RecordMetric(ctx context.Context, id, metric string, delta float64) (Product, error)
}

// BulkCreated reports one successful item of a bulk creation.
type BulkCreated struct {
	SourceItemID string `json:"source_item_id"`
	ProductID    string `json:"product_id"`
	Title        string `json:"title"`
}

// BulkFailed reports one rejected item of a bulk creation.
type BulkFailed struct {
	SourceItemID string `json:"source_item_id"`
	Error        string `json:"error"`
}

// BulkResult is the per-item outcome report of a bulk creation. A failed
// item never blocks the rest of the batch.
type BulkResult struct {
	Created      []BulkCreated `json:"created_products"`
	Failed       []BulkFailed  `json:"failed_products"`
	TotalCreated int           `json:"total_created"`
	TotalFailed  int           `json:"total_failed"`
}

type service struct {
	store   *Store
	calc    *pricing.Calculator
	archive Archive
	log     *logrus.Logger
}

// NewService builds the product assembler. archive may be nil, in which
// case created products live only in the in-memory store.
func NewService(store *Store, calc *pricing.Calculator, archive Archive, log *logrus.Logger) Service {
	return &service{store: store, calc: calc, archive: archive, log: log}
}

// CreateProduct derives a full product record from one opportunity and
// inserts it into the catalog. The record is assembled completely before
// the insert, so a failing step can never leave a partial entry behind.
func (s *service) CreateProduct(ctx context.Context, opp sourcing.Opportunity) (Product, error) {
	now := time.Now().UTC()
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	id := fmt.Sprintf("FLIP-%s-%s", now.Format("20060102150405"), suffix)

	quote := s.calc.Quote(opp.TotalCost)
	optimized := listing.OptimizeTitle(opp.Title)
	tags := listing.GenerateTags(opp)
	description := listing.GenerateDescription(opp)
	seo := listing.GenerateSEO(opp, optimized)

	var images []string
	if opp.ImageURL != "" {
		images = []string{opp.ImageURL}
	}

	product := &Product{
		ID:     id,
		SKU:    skuPrefix(opp.Category) + "-" + suffix,
		Handle: slug.Make(optimized),

		Title:            opp.Title,
		OptimizedTitle:   optimized,
		SalePrice:        quote.SalePrice,
		CompareAtPrice:   quote.CompareAtPrice,
		CostPrice:        quote.CostPrice,
		ProfitMargin:     quote.ProfitMargin,
		ProfitPercentage: quote.ProfitPercentage,

		Description: description,
		Images:      images,
		Category:    opp.Category,
		Subcategory: opp.Subcategory,
		Tags:        tags,
		Condition:   opp.Condition,

		SourcePlatform:  opp.Platform,
		SourceURL:       opp.ListingURL,
		SourceItemID:    opp.ItemID,
		SellerRating:    opp.SellerRating,
		ConfidenceScore: opp.ConfidenceScore,

		SEO: seo,

		Quantity:       1,
		TrackQuantity:  true,
		AllowBackorder: false,

		Weight:           1.0,
		RequiresShipping: true,
		ShippingCost:     0,
		ProcessingTime:   "1-2 business days",
		ShippingTime:     "3-7 business days",

		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,

		ScanID:             opp.ScanID,
		ScanDate:           opp.ScanDate,
		MatchedKeyword:     opp.MatchedKeyword,
		OriginalConfidence: opp.ConfidenceScore,
	}

	s.store.Insert(product)

	if s.archive != nil {
		if err := s.archive.SaveProduct(ctx, product); err != nil {
			s.log.WithFields(logrus.Fields{
				"module":     "catalog",
				"product_id": product.ID,
			}).WithError(err).Error("product archive write failed")
		}
	}

	s.log.WithFields(logrus.Fields{
		"module":     "catalog",
		"product_id": product.ID,
		"sku":        product.SKU,
		"sale_price": product.SalePrice,
	}).Info("product created")

	return *product, nil
}

// BulkCreate assembles a batch of opportunities independently and reports
// the per-item outcome, mirroring single creation for each entry.
func (s *service) BulkCreate(ctx context.Context, opps []sourcing.Opportunity) BulkResult {
	result := BulkResult{
		Created: []BulkCreated{},
		Failed:  []BulkFailed{},
	}
	for _, opp := range opps {
		p, err := s.CreateProduct(ctx, opp)
		if err != nil {
			result.Failed = append(result.Failed, BulkFailed{SourceItemID: opp.ItemID, Error: err.Error()})
			continue
		}
		result.Created = append(result.Created, BulkCreated{
			SourceItemID: opp.ItemID,
			ProductID:    p.ID,
			Title:        p.OptimizedTitle,
		})
	}
	result.TotalCreated = len(result.Created)
	result.TotalFailed = len(result.Failed)
	return result
}

func (s *service) GetProduct(id string) (Product, error) {
	return s.store.GetByID(id)
}

func (s *service) ListProducts(page, pageSize int, category, status string) ([]Product, Pagination) {
	return s.store.List(page, pageSize, category, status)
}

func (s *service) FeaturedProducts(limit int) []Product {
	return s.store.Featured(limit)
}

func (s *service) RecordMetric(ctx context.Context, id, metric string, delta float64) (Product, error) {
	p, err := s.store.UpdateMetric(id, metric, delta)
	if err != nil {
		return Product{}, err
	}
	if s.archive != nil {
		if err := s.archive.SaveMetrics(ctx, p.ID, p.Metrics, p.UpdatedAt); err != nil {
			s.log.WithFields(logrus.Fields{
				"module":     "catalog",
				"product_id": p.ID,
				"metric":     metric,
			}).WithError(err).Error("metric archive write failed")
		}
	}
	return p, nil
}

// skuPrefix takes the first three letters of the category, uppercased,
// falling back to GEN for uncategorized items.
func skuPrefix(category string) string {
	var letters []rune
	for _, r := range category {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 3 {
				break
			}
		}
	}
	if len(letters) < 3 {
		return "GEN"
	}
	return string(letters)
}
