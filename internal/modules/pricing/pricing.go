package pricing

import "github.com/shopspring/decimal"

// DefaultMarkupPercent is applied when a catalog is built without an
// explicit markup configuration.
const DefaultMarkupPercent = 35.0

// compareAtFactor inflates the sale price into the strike-through
// "compare at" presentation price.
var (
	compareAtFactor = decimal.NewFromFloat(1.15)
	oneCent         = decimal.New(1, -2)
)

// Quote is the full pricing breakdown for one sourced item.
type Quote struct {
	SalePrice        float64 `json:"sale_price"`
	CompareAtPrice   float64 `json:"compare_at_price"`
	CostPrice        float64 `json:"cost_price"`
	ProfitMargin     float64 `json:"profit_margin"`
	ProfitPercentage float64 `json:"profit_percentage"`
}

// Calculator derives storefront pricing from a source cost. The markup
// percentage is fixed for the calculator's lifetime.
type Calculator struct {
	markup decimal.Decimal
}

func NewCalculator(markupPercent float64) *Calculator {
	return &Calculator{markup: decimal.NewFromFloat(markupPercent)}
}

// Quote prices a single item. A zero or missing cost yields a zero quote
// rather than an error. All monetary figures are rounded half-up to two
// decimal places.
func (c *Calculator) Quote(cost float64) Quote {
	if cost < 0 {
		cost = 0
	}
	costD := decimal.NewFromFloat(cost)
	hundred := decimal.NewFromInt(100)

	sale := costD.Mul(hundred.Add(c.markup)).Div(hundred).Round(2)
	compareAt := sale.Mul(compareAtFactor).Round(2)
	// Tiny sale prices can round the 15% uplift away; the strike-through
	// price must stay strictly above the sale price whenever it exists.
	if sale.IsPositive() && !compareAt.GreaterThan(sale) {
		compareAt = sale.Add(oneCent)
	}
	margin := sale.Sub(costD).Round(2)

	pct := decimal.Zero
	if sale.IsPositive() {
		pct = margin.Div(sale).Mul(hundred).Round(2)
	}

	return Quote{
		SalePrice:        sale.InexactFloat64(),
		CompareAtPrice:   compareAt.InexactFloat64(),
		CostPrice:        costD.Round(2).InexactFloat64(),
		ProfitMargin:     margin.InexactFloat64(),
		ProfitPercentage: pct.InexactFloat64(),
	}
}
