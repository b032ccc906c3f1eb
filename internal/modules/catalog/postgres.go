package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

type postgresArchive struct{ db *sql.DB }

// NewPostgresArchive returns an Archive backed by the products table.
func NewPostgresArchive(db *sql.DB) Archive { return &postgresArchive{db: db} }

func (r *postgresArchive) SaveProduct(ctx context.Context, p *Product) error {
	seo, err := json.Marshal(p.SEO)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, sku, handle, title, optimized_title, description,
		   sale_price, compare_at_price, cost_price, profit_margin, profit_percentage,
		   category, subcategory, condition, tags, images,
		   source_platform, source_url, source_item_id, seller_rating, confidence_score,
		   seo, status, scan_id, scan_date, matched_keyword,
		   created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28)`,
		p.ID, p.SKU, p.Handle, p.Title, p.OptimizedTitle, p.Description,
		p.SalePrice, p.CompareAtPrice, p.CostPrice, p.ProfitMargin, p.ProfitPercentage,
		p.Category, p.Subcategory, p.Condition, pq.Array(p.Tags), pq.Array(p.Images),
		p.SourcePlatform, p.SourceURL, p.SourceItemID, p.SellerRating, p.ConfidenceScore,
		seo, p.Status, p.ScanID, p.ScanDate, p.MatchedKeyword,
		p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *postgresArchive) SaveMetrics(ctx context.Context, id string, m Metrics, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET views=$1, clicks=$2, add_to_cart=$3, purchases=$4,
		    conversion_rate=$5, revenue=$6, updated_at=$7
		WHERE id=$8`,
		m.Views, m.Clicks, m.AddToCart, m.Purchases,
		m.ConversionRate, m.Revenue, updatedAt, id)
	return err
}
