package classifier

import (
	"testing"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

func TestClassify(t *testing.T) {
	c := New(patterns.Default())

	cases := []struct {
		name     string
		fragment string
		want     legal.Category
	}{
		{"termination", "Either party may terminate this agreement upon written notice.", legal.CategoryTermination},
		{"liability", "Neither party shall be liable for indirect damages of any kind.", legal.CategoryLiability},
		{"payment", "Client agrees to remit payment within thirty days of invoice.", legal.CategoryPayment},
		{"confidentiality", "Recipient keeps all proprietary information strictly confidential.", legal.CategoryConfidentiality},
		{"intellectual property", "All copyright in the deliverables vests in the Company.", legal.CategoryIntellectualProperty},
		{"dispute resolution", "Disagreements are settled by binding arbitration in Mumbai.", legal.CategoryDisputeResolution},
		{"obligation fallback", "The vendor shall deliver the goods in original packaging.", legal.CategoryObligation},
		{"right fallback", "The customer can request a replacement unit under warranty.", legal.CategoryRight},
		{"general fallback", "This document was prepared in duplicate originals.", legal.CategoryGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Classify(tc.fragment); got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.fragment, got, tc.want)
			}
		})
	}
}

func TestClassifyFirstCategoryWins(t *testing.T) {
	c := New(patterns.Default())

	// Mentions both termination and payment; termination is declared first.
	got := c.Classify("Company may terminate the contract if any payment is overdue.")
	if got != legal.CategoryTermination {
		t.Fatalf("expected termination to win over payment, got %q", got)
	}
}

func TestTitle(t *testing.T) {
	cases := map[legal.Category]string{
		legal.CategoryDisputeResolution:    "Dispute Resolution",
		legal.CategoryIntellectualProperty: "Intellectual Property",
		legal.CategoryTermination:          "Termination",
		legal.CategoryGeneral:              "General",
	}
	for cat, want := range cases {
		if got := Title(cat); got != want {
			t.Errorf("Title(%q) = %q, want %q", cat, got, want)
		}
	}
}
