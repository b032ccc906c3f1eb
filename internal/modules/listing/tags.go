package listing

import (
	"strings"

	"github.com/fliphawk/flipship-backend/internal/modules/sourcing"
)

// MaxTags caps the discovery tag set stored on a product.
const MaxTags = 15

type conditionRule struct {
	substring string
	tags      []string
}

// conditionRules are checked in order against the lowercased condition
// string; only the first matching rule contributes its group.
var conditionRules = []conditionRule{
	{"new", []string{"new", "brand-new"}},
	{"like new", []string{"like-new", "excellent-condition"}},
	{"very good", []string{"very-good", "great-condition"}},
}

type tierRule struct {
	threshold float64
	tag       string
}

// Exclusive ladders: the highest qualifying tier wins.
var confidenceTiers = []tierRule{
	{90, "premium-quality"},
	{80, "high-quality"},
	{70, "good-quality"},
}

var profitTiers = []tierRule{
	{50, "great-value"},
	{30, "good-deal"},
}

// knownBrands is scanned in order against the lowercased title; the first
// hit tags the product with the brand plus "branded" and ends the scan.
var knownBrands = []string{
	"apple", "samsung", "sony", "nintendo", "microsoft", "bose", "dyson",
	"lego", "nike", "adidas", "jordan", "supreme", "yeezy", "gucci",
	"louis vuitton", "rolex", "pokemon", "funko",
}

type keywordGroup struct {
	name     string
	keywords []string
}

// keywordGroups fire independently of each other: every group whose
// keyword appears in the title adds its name as a tag.
var keywordGroups = []keywordGroup{
	{"vintage", []string{"vintage", "retro", "antique", "classic"}},
	{"collectible", []string{"collectible", "collectable", "rare", "limited", "graded", "first edition"}},
	{"gaming", []string{"gaming", "game", "console", "playstation", "xbox", "switch", "controller"}},
	{"tech", []string{"wireless", "bluetooth", "airpods", "iphone", "ipad", "macbook", "laptop", "tablet", "headphone", "smartwatch", "camera"}},
	{"fashion", []string{"sneaker", "shoe", "hoodie", "jacket", "designer", "streetwear", "handbag"}},
}

// GenerateTags derives the discovery tag set for a sourced opportunity.
// Rules are evaluated independently, duplicates keep their first position,
// and the final list is capped at MaxTags.
func GenerateTags(opp sourcing.Opportunity) []string {
	var candidates []string

	if opp.Category != "" {
		candidates = append(candidates, strings.ToLower(opp.Category))
	}
	if opp.Subcategory != "" {
		candidates = append(candidates, strings.ToLower(opp.Subcategory))
	}

	condition := strings.ToLower(opp.Condition)
	for _, rule := range conditionRules {
		if strings.Contains(condition, rule.substring) {
			candidates = append(candidates, rule.tags...)
			break
		}
	}

	for _, tier := range confidenceTiers {
		if opp.ConfidenceScore >= tier.threshold {
			candidates = append(candidates, tier.tag)
			break
		}
	}

	for _, tier := range profitTiers {
		if opp.EstimatedProfit >= tier.threshold {
			candidates = append(candidates, tier.tag)
			break
		}
	}

	title := strings.ToLower(opp.Title)
	for _, brand := range knownBrands {
		if strings.Contains(title, brand) {
			candidates = append(candidates, brand, "branded")
			break
		}
	}

	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(title, kw) {
				candidates = append(candidates, group.name)
				break
			}
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	tags := make([]string, 0, len(candidates))
	for _, tag := range candidates {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}
