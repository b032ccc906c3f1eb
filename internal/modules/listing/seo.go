package listing

import (
	"fmt"
	"strings"

	"github.com/fliphawk/flipship-backend/internal/modules/sourcing"
)

const (
	maxMetaTitleLen = 60
	maxMetaDescLen  = 160
	maxSEOKeywords  = 20

	storeBrand = "FlipShip"
)

// marketingTerms are always appended to the keyword pool.
var marketingTerms = []string{
	"best price", "fast shipping", "deals", "online shopping", "buy online",
}

// StructuredData is the schema.org-style block embedded in product pages.
type StructuredData struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	Brand     string `json:"brand"`
}

// SEO holds all search and social metadata derived for a product.
type SEO struct {
	MetaTitle         string         `json:"meta_title"`
	MetaDescription   string         `json:"meta_description"`
	Keywords          []string       `json:"keywords"`
	SocialTitle       string         `json:"social_title"`
	SocialDescription string         `json:"social_description"`
	StructuredData    StructuredData `json:"structured_data"`
}

// GenerateSEO builds search metadata from the optimized title and the
// opportunity's category/condition signals. Meta title and description
// are hard-capped at 60 and 160 characters.
func GenerateSEO(opp sourcing.Opportunity, optimizedTitle string) SEO {
	condition := opp.Condition
	if condition == "" {
		condition = "Good"
	}

	metaTitle := truncate(fmt.Sprintf("%s - Best Price & Fast Shipping | %s", optimizedTitle, storeBrand), maxMetaTitleLen)
	metaDesc := truncate(fmt.Sprintf(
		"Buy %s at the best price. %s condition, fast shipping and easy 30-day returns. Shop %s today.",
		optimizedTitle, condition, storeBrand), maxMetaDescLen)

	return SEO{
		MetaTitle:         metaTitle,
		MetaDescription:   metaDesc,
		Keywords:          seoKeywords(opp, optimizedTitle),
		SocialTitle:       optimizedTitle,
		SocialDescription: fmt.Sprintf("Found on %s - curated deals, verified quality.", storeBrand),
		StructuredData: StructuredData{
			Type:      "Product",
			Name:      optimizedTitle,
			Category:  opp.Category,
			Condition: condition,
			Brand:     storeBrand,
		},
	}
}

func seoKeywords(opp sourcing.Opportunity, optimizedTitle string) []string {
	var pool []string
	for _, word := range strings.Fields(strings.ToLower(optimizedTitle)) {
		if len(word) > 3 && isAlphabetic(word) {
			pool = append(pool, word)
		}
	}
	if opp.Category != "" {
		pool = append(pool, strings.ToLower(opp.Category))
	}
	if opp.Condition != "" {
		pool = append(pool, strings.ToLower(opp.Condition))
	}
	pool = append(pool, marketingTerms...)

	seen := make(map[string]struct{}, len(pool))
	keywords := make([]string, 0, len(pool))
	for _, kw := range pool {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
		if len(keywords) == maxSEOKeywords {
			break
		}
	}
	return keywords
}

// truncate cuts s to at most n runes, keeping the result a valid string.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
