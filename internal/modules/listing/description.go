package listing

import (
	"fmt"
	"strings"

	"github.com/fliphawk/flipship-backend/internal/modules/sourcing"
)

const maxKeyFeatures = 4

// GenerateDescription renders the storefront description for a sourced
// item. The output is a deterministic template over the opportunity
// fields; no external formatter is involved.
func GenerateDescription(opp sourcing.Opportunity) string {
	title := opp.Title
	if title == "" {
		title = fallbackTitle
	}
	condition := opp.Condition
	if condition == "" {
		condition = "Good"
	}
	category := opp.Category
	if category == "" {
		category = "General"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "Condition: %s | Category: %s | Quality Score: %.0f/100\n\n", condition, category, opp.ConfidenceScore)

	b.WriteString("PRODUCT HIGHLIGHTS\n")
	b.WriteString("- Carefully sourced and verified for authenticity\n")
	b.WriteString("- Inspected against our quality checklist before listing\n")
	b.WriteString("- Competitively priced against current market listings\n\n")

	if features := keyFeatures(opp.Title); len(features) > 0 {
		b.WriteString("KEY FEATURES\n")
		for _, f := range features {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	b.WriteString("WHY BUY FROM FLIPSHIP\n")
	b.WriteString("- Secure checkout and buyer protection on every order\n")
	b.WriteString("- Responsive support, 7 days a week\n")
	b.WriteString("- Thousands of satisfied customers\n\n")

	b.WriteString("SHIPPING & RETURNS\n")
	b.WriteString("Ships within 1-2 business days with tracking. 30-day hassle-free returns.\n\n")

	b.WriteString("Order today - inventory is limited and popular items sell out fast.\n")

	return b.String()
}

// keyFeatures pulls up to maxKeyFeatures alphabetic words longer than
// three characters out of the title, preserving their original order.
func keyFeatures(title string) []string {
	var features []string
	for _, word := range strings.Fields(title) {
		if len(word) <= 3 || !isAlphabetic(word) {
			continue
		}
		features = append(features, word)
		if len(features) == maxKeyFeatures {
			break
		}
	}
	return features
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}
