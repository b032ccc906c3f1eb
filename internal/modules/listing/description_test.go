package listing

import (
	"strings"
	"testing"

	"github.com/fliphawk/flipship-backend/internal/modules/sourcing"
)

func TestGenerateDescription_Sections(t *testing.T) {
	opp := sourcing.Opportunity{
		Title:           "Apple AirPods Pro 2nd Generation with MagSafe Case",
		Category:        "Tech",
		Condition:       "New",
		ConfidenceScore: 92,
	}
	desc := GenerateDescription(opp)

	for _, want := range []string{
		"Apple AirPods Pro 2nd Generation with MagSafe Case",
		"Condition: New | Category: Tech | Quality Score: 92/100",
		"PRODUCT HIGHLIGHTS",
		"KEY FEATURES",
		"WHY BUY FROM FLIPSHIP",
		"SHIPPING & RETURNS",
	} {
		if !strings.Contains(desc, want) {
			t.Fatalf("description missing %q:\n%s", want, desc)
		}
	}
}

func TestGenerateDescription_Deterministic(t *testing.T) {
	opp := sourcing.Opportunity{Title: "Sony Camera", Category: "Tech", Condition: "Used", ConfidenceScore: 75}
	if GenerateDescription(opp) != GenerateDescription(opp) {
		t.Fatal("description generation is not deterministic")
	}
}

func TestGenerateDescription_EmptyOpportunityDefaults(t *testing.T) {
	desc := GenerateDescription(sourcing.Opportunity{})
	if !strings.Contains(desc, "Premium Product") {
		t.Fatalf("expected fallback title, got:\n%s", desc)
	}
	if !strings.Contains(desc, "Condition: Good | Category: General | Quality Score: 0/100") {
		t.Fatalf("expected defaulted header, got:\n%s", desc)
	}
	if strings.Contains(desc, "KEY FEATURES") {
		t.Fatalf("no key features expected for empty title, got:\n%s", desc)
	}
}

func TestKeyFeatures(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  []string
	}{
		{"first four long alphabetic words", "Apple AirPods Pro Second Generation Wireless Case", []string{"Apple", "AirPods", "Second", "Generation"}},
		{"short and numeric words skipped", "PS5 Slim 1TB Digital Edition Console", []string{"Slim", "Digital", "Edition", "Console"}},
		{"empty title", "", nil},
	}
	for _, tc := range cases {
		got := keyFeatures(tc.title)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
			}
		}
	}
}
