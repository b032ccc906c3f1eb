package sourcing

// Opportunity is a raw arbitrage find produced by a marketplace scan.
// It is the read-only input to the catalog pipeline; every field may be
// missing and defaults to its zero value, the pipeline never rejects one
// for incomplete data.
type Opportunity struct {
	Title           string  `json:"title"`
	TotalCost       float64 `json:"total_cost" validate:"gte=0"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory"`
	Condition       string  `json:"condition"`
	ConfidenceScore float64 `json:"confidence_score" validate:"gte=0,lte=100"`
	ImageURL        string  `json:"image_url"`
	ListingURL      string  `json:"listing_url"`
	ItemID          string  `json:"item_id"`
	Platform        string  `json:"platform"`
	SellerRating    float64 `json:"seller_rating"`
	EstimatedProfit float64 `json:"estimated_profit"`
	MatchedKeyword  string  `json:"matched_keyword"`
	ScanID          string  `json:"scan_id"`
	ScanDate        string  `json:"scan_date"`
}
