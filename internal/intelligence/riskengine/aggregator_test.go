package riskengine

import (
	"strings"
	"testing"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

func clause(cat legal.Category, score int, simplified string, factors ...string) legal.ClauseRecord {
	if len(factors) == 0 {
		factors = []string{patterns.StandardClauseFactor}
	}
	return legal.ClauseRecord{
		Category:    cat,
		RiskScore:   score,
		RiskLevel:   LevelForScore(score),
		Simplified:  simplified,
		RiskFactors: factors,
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := NewAggregator().Aggregate(nil, nil)

	if got.OverallRisk != legal.RiskUnknown {
		t.Fatalf("overall = %q, want unknown", got.OverallRisk)
	}
	if got.TotalClauses != 0 || got.RiskScore != 0 {
		t.Fatalf("empty assessment carries counts: %+v", got)
	}
	if len(got.Recommendations) == 0 {
		t.Fatal("empty assessment must still carry a default recommendation")
	}
}

func TestAggregateOverallRiskRules(t *testing.T) {
	agg := NewAggregator()

	cases := []struct {
		name   string
		scores []int
		want   legal.RiskLevel
	}{
		{"high by average", []int{7, 7, 8, 7}, legal.RiskHigh},
		{"high by single max", []int{3, 3, 9}, legal.RiskHigh},
		{"high by cluster", []int{7, 7, 7, 2, 2, 2, 2}, legal.RiskHigh},
		{"medium by average", []int{5, 5, 6}, legal.RiskMedium},
		{"medium by one high clause", []int{3, 3, 7, 3, 3, 3}, legal.RiskMedium},
		{"low", []int{3, 3, 4}, legal.RiskLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clauses := make([]legal.ClauseRecord, 0, len(tc.scores))
			for _, s := range tc.scores {
				clauses = append(clauses, clause(legal.CategoryGeneral, s, ""))
			}
			if got := agg.Aggregate(clauses, nil).OverallRisk; got != tc.want {
				t.Fatalf("scores %v: overall = %q, want %q", tc.scores, got, tc.want)
			}
		})
	}
}

func TestAggregateDistribution(t *testing.T) {
	clauses := []legal.ClauseRecord{
		clause(legal.CategoryGeneral, 2, ""),
		clause(legal.CategoryGeneral, 5, ""),
		clause(legal.CategoryGeneral, 6, ""),
		clause(legal.CategoryGeneral, 9, ""),
	}
	dist := NewAggregator().Aggregate(clauses, nil).RiskDistribution

	if dist.Counts.Low != 1 || dist.Counts.Medium != 2 || dist.Counts.High != 1 {
		t.Fatalf("counts = %+v", dist.Counts)
	}
	if dist.Low != 25.0 || dist.Medium != 50.0 || dist.High != 25.0 {
		t.Fatalf("percentages = %v/%v/%v", dist.Low, dist.Medium, dist.High)
	}
}

func TestAggregateTopRiskAreas(t *testing.T) {
	descs := patterns.Default().RiskAreaDescriptions
	clauses := []legal.ClauseRecord{
		clause(legal.CategoryLiability, 9, "Liability sample one"),
		clause(legal.CategoryLiability, 9, "Liability sample two"),
		clause(legal.CategoryPayment, 7, "Payment sample"),
		clause(legal.CategoryConfidentiality, 3, "Secrecy sample"),
	}

	areas := NewAggregator().Aggregate(clauses, descs).TopRiskAreas
	if len(areas) != 2 {
		t.Fatalf("expected liability and payment areas, got %+v", areas)
	}
	if areas[0].Area != "Liability" {
		t.Fatalf("areas must sort by average score, got %+v", areas)
	}
	if areas[0].SampleClause != "Liability sample one" {
		t.Fatalf("sample must be the first clause hitting the category max, got %q", areas[0].SampleClause)
	}
	if areas[0].Description != descs["liability"] {
		t.Fatalf("description = %q", areas[0].Description)
	}
	if areas[1].Area != "Payment" || areas[1].AvgRiskScore != 7.0 {
		t.Fatalf("payment area wrong: %+v", areas[1])
	}
}

func TestAggregateRecommendations(t *testing.T) {
	clauses := []legal.ClauseRecord{
		clause(legal.CategoryLiability, 10, "", "High-risk term: 'unlimited liability'", "Unlimited liability exposure"),
		clause(legal.CategoryTermination, 8, "", "Allows immediate termination", "One-sided clause favoring other party"),
		clause(legal.CategoryGeneral, 6, "", "Contains ambiguous language"),
	}
	recs := NewAggregator().Aggregate(clauses, nil).Recommendations

	if len(recs) == 0 || !strings.HasPrefix(recs[0], "CRITICAL") {
		t.Fatalf("high-tier message must lead: %v", recs)
	}
	wantSubstrings := []string{
		"liability cap",
		"cure period",
		"more balanced terms",
		"vague or ambiguous",
		"insurance or indemnification",
		"negotiate for more balanced conditions",
	}
	joined := strings.Join(recs, "\n")
	for _, want := range wantSubstrings {
		if !strings.Contains(joined, want) {
			t.Errorf("missing recommendation containing %q in %v", want, recs)
		}
	}
	if len(recs) > 10 {
		t.Fatalf("recommendations must cap at 10, got %d", len(recs))
	}
}

func TestAggregateGenericFallbackRecommendations(t *testing.T) {
	clauses := []legal.ClauseRecord{
		clause(legal.CategoryConfidentiality, 3, ""),
		clause(legal.CategoryGeneral, 4, ""),
	}
	recs := NewAggregator().Aggregate(clauses, nil).Recommendations

	if len(recs) != 3 {
		t.Fatalf("low-risk doc should carry tier message plus two generic fallbacks, got %v", recs)
	}
	if !strings.Contains(recs[1], "understand all terms") || !strings.Contains(recs[2], "Keep copies") {
		t.Fatalf("unexpected fallback wording: %v", recs)
	}
}

func TestAggregateRiskFactorsDeduplicated(t *testing.T) {
	clauses := []legal.ClauseRecord{
		clause(legal.CategoryGeneral, 5, "", "Contains ambiguous language"),
		clause(legal.CategoryGeneral, 5, "", "Contains ambiguous language"),
	}
	got := NewAggregator().Aggregate(clauses, nil).RiskFactors
	if len(got) != 1 {
		t.Fatalf("factors must deduplicate, got %v", got)
	}
}

func TestAggregateSummaryMentionsHighRiskAreas(t *testing.T) {
	clauses := []legal.ClauseRecord{
		clause(legal.CategoryDisputeResolution, 8, ""),
		clause(legal.CategoryGeneral, 3, ""),
	}
	summary := NewAggregator().Aggregate(clauses, nil).RiskSummary

	if !strings.Contains(summary, "1 out of 2 clauses (50.0%) are high-risk") {
		t.Fatalf("summary = %q", summary)
	}
	if !strings.Contains(summary, "dispute resolution") {
		t.Fatalf("summary should name the high-risk area: %q", summary)
	}
}
