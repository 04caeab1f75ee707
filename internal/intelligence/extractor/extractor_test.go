package extractor

import (
	"testing"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
)

const sampleAgreement = `SERVICE AGREEMENT

This agreement is made between Acme Widgets LLC and John Smith on January 15, 2024.

1. Payment. Client shall provide payment of $5,000 within 30 days of invoice. A late fee of 1.5% applies to overdue balances.

2. Termination. Either party may terminate upon 60 days notice. Termination for cause follows any material breach.

3. Notices. Send notices to legal@acmewidgets.com or 100 Main Street, Suite 4, Springfield, IL 62704, phone (555) 123-4567.`

func newTestExtractor() *Extractor {
	return New(patterns.Default(), nil)
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func TestExtractAllKindsPresent(t *testing.T) {
	got := newTestExtractor().Extract(sampleAgreement)

	for _, kind := range entityKinds {
		if _, ok := got[kind]; !ok {
			t.Errorf("missing kind %q in result", kind)
		}
		if got[kind] == nil {
			t.Errorf("kind %q must be an empty slice, not nil", kind)
		}
	}
}

func TestExtractCoreKinds(t *testing.T) {
	got := newTestExtractor().Extract(sampleAgreement)

	if !contains(got["amounts"], "$5,000") {
		t.Errorf("amounts = %v, want $5,000 present", got["amounts"])
	}
	if !contains(got["dates"], "January 15, 2024") {
		t.Errorf("dates = %v, want the written date present", got["dates"])
	}
	if !contains(got["dates"], "within 30 days") {
		t.Errorf("dates = %v, want the relative deadline present", got["dates"])
	}
	if !contains(got["percentages"], "1.5%") {
		t.Errorf("percentages = %v", got["percentages"])
	}
	if !contains(got["email_addresses"], "legal@acmewidgets.com") {
		t.Errorf("email_addresses = %v", got["email_addresses"])
	}
	if !contains(got["phone_numbers"], "(555) 123-4567") {
		t.Errorf("phone_numbers = %v", got["phone_numbers"])
	}
	if len(got["termination_conditions"]) == 0 {
		t.Errorf("expected termination conditions, got none")
	}
	if len(got["obligations"]) == 0 {
		t.Errorf("expected obligations, got none")
	}
}

func TestExtractParties(t *testing.T) {
	got := newTestExtractor().Extract(sampleAgreement)

	var sawCompany, sawPerson bool
	for _, p := range got["parties"] {
		if p == "Acme Widgets LLC" {
			sawCompany = true
		}
		if p == "John Smith" {
			sawPerson = true
		}
	}
	if !sawCompany || !sawPerson {
		t.Fatalf("parties = %v, want company and personal name", got["parties"])
	}
}

type fakeNER struct{ entities []NamedEntity }

func (f fakeNER) Entities(string) []NamedEntity { return f.entities }

func TestExtractPartiesWithRecognizer(t *testing.T) {
	ner := fakeNER{entities: []NamedEntity{
		{Text: "Globex Corporation", Label: LabelOrganization},
		{Text: "Jane Doe", Label: LabelPerson},
		{Text: "Springfield", Label: "GPE"}, // ignored label
	}}
	got := New(patterns.Default(), ner).Extract(sampleAgreement)

	if !contains(got["parties"], "Globex Corporation") || !contains(got["parties"], "Jane Doe") {
		t.Fatalf("recognizer parties missing: %v", got["parties"])
	}
	if contains(got["parties"], "Springfield") {
		t.Fatalf("non-party label leaked into parties: %v", got["parties"])
	}
}

func TestCleanAndDeduplicate(t *testing.T) {
	got := cleanAndDeduplicate([]string{
		"  Acme   Widgets  LLC ",
		"acme widgets llc",
		"ab", // below length bound
		"Beta Co",
	})

	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	// sorted, first-seen casing preserved
	if got[0] != "Acme Widgets LLC" || got[1] != "Beta Co" {
		t.Fatalf("got %v", got)
	}
}

func TestCleanAndDeduplicateCap(t *testing.T) {
	items := make([]string, 0, 25)
	for c := 'a'; c < 'z'; c++ {
		items = append(items, "entity "+string(c))
	}
	if got := cleanAndDeduplicate(items); len(got) != maxEntitiesPerKind {
		t.Fatalf("expected cap of %d, got %d", maxEntitiesPerKind, len(got))
	}
}

func TestSummarize(t *testing.T) {
	entities := EmptyEntities()
	entities["parties"] = []string{"Acme Widgets LLC", "John Smith"}
	entities["amounts"] = []string{"$5,000"}
	entities["dates"] = []string{"January 15, 2024"}
	entities["penalties"] = []string{"late fee of 1.5% applies to overdue balances"}
	entities["obligations"] = []string{"o1", "o2", "o3", "o4"}

	got := Summarize(entities)

	if got.TotalEntitiesFound != 9 {
		t.Fatalf("total = %d, want 9", got.TotalEntitiesFound)
	}
	if !got.HasParties || !got.HasFinancialTerms || !got.HasDeadlines || !got.HasPenalties {
		t.Fatalf("presence flags wrong: %+v", got)
	}
	if got.ComplexityScore != 4 {
		t.Fatalf("complexity = %d, want 4", got.ComplexityScore)
	}

	wantInsights := []string{
		"Document involves 2 parties",
		"Contains 1 financial terms",
		"Document includes penalty clauses",
		"Complex obligation structure detected",
	}
	if len(got.Insights) != len(wantInsights) {
		t.Fatalf("insights = %v", got.Insights)
	}
	for i, want := range wantInsights {
		if got.Insights[i] != want {
			t.Errorf("insight[%d] = %q, want %q", i, got.Insights[i], want)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(EmptyEntities())
	if got.TotalEntitiesFound != 0 || got.ComplexityScore != 0 || len(got.Insights) != 0 {
		t.Fatalf("empty summary wrong: %+v", got)
	}
}
