package listing

import (
	"regexp"
	"strings"
)

// fallbackTitle is used when a sourced listing has no usable title at all.
const fallbackTitle = "Premium Product"

const maxTitleLen = 70

// noisePhrases are attention-grabber fillers sellers cram into marketplace
// titles. Removed case-insensitively, in this order.
var noisePhrases = []string{
	"l@@k",
	"must see",
	"must sell",
	"no reserve",
	"free shipping",
	"fast shipping",
	"hot deal",
	"best offer",
	"look!",
	"wow",
}

type titlePrefix struct {
	keyword string
	prefix  string
}

// titlePrefixes upgrade a title with a selling prefix when its keyword
// appears anywhere in the cleaned title. At most one fires; order matters.
var titlePrefixes = []titlePrefix{
	{"new", "Brand New"},
	{"vintage", "Authentic Vintage"},
	{"rare", "Rare Collectible"},
	{"limited", "Limited Edition"},
}

var (
	noiseRe      = compileNoiseRe()
	spaceRuns    = regexp.MustCompile(`\s+`)
	exclaimRuns  = regexp.MustCompile(`!{2,}`)
	questionRuns = regexp.MustCompile(`\?{2,}`)
)

func compileNoiseRe() *regexp.Regexp {
	quoted := make([]string, len(noisePhrases))
	for i, p := range noisePhrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
}

// OptimizeTitle rewrites a raw marketplace title for storefront display.
// It is a pure function: same input, same output, no side effects.
func OptimizeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return fallbackTitle
	}

	title = noiseRe.ReplaceAllString(title, "")

	title = exclaimRuns.ReplaceAllString(title, "!")
	title = questionRuns.ReplaceAllString(title, "?")
	title = spaceRuns.ReplaceAllString(title, " ")
	title = strings.Trim(title, " .,!?-")

	if title == "" {
		return fallbackTitle
	}

	lower := strings.ToLower(title)
	for _, p := range titlePrefixes {
		if !strings.Contains(lower, p.keyword) {
			continue
		}
		if !strings.HasPrefix(title, p.prefix) {
			title = p.prefix + " " + title
		}
		break
	}

	runes := []rune(title)
	if len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen-3]) + "..."
	}
	return title
}
