package riskengine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// Aggregator folds per-clause risk scores into the document-level
// assessment: overall verdict, distribution, top risk areas, and
// recommendations.
type Aggregator struct{}

// NewAggregator builds an Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// riskAreaDescriptions is consulted by Aggregate; the fallback covers
// categories without a dedicated description.
const defaultRiskAreaDescription = "Important contractual provision"

// Aggregate computes the document-level risk assessment from scored
// clauses.  An empty clause list yields the well-defined unknown
// assessment rather than an error.
func (a *Aggregator) Aggregate(clauses []legal.ClauseRecord, descriptions map[string]string) legal.RiskAssessment {
	if len(clauses) == 0 {
		return EmptyAssessment()
	}

	var (
		sum           int
		maxScore      int
		highCount     int
		factors       []string
		breakdown     = map[legal.Category][]int{}
		categoryOrder []legal.Category
	)
	for _, cl := range clauses {
		sum += cl.RiskScore
		if cl.RiskScore > maxScore {
			maxScore = cl.RiskScore
		}
		if cl.RiskScore >= 7 {
			highCount++
		}
		factors = append(factors, cl.RiskFactors...)
		if _, seen := breakdown[cl.Category]; !seen {
			categoryOrder = append(categoryOrder, cl.Category)
		}
		breakdown[cl.Category] = append(breakdown[cl.Category], cl.RiskScore)
	}

	avg := float64(sum) / float64(len(clauses))
	overall := overallRisk(avg, maxScore, highCount)
	uniqueFactors := dedupe(factors)

	return legal.RiskAssessment{
		OverallRisk:      overall,
		RiskScore:        round1(avg),
		MaxRiskScore:     maxScore,
		HighRiskClauses:  highCount,
		TotalClauses:     len(clauses),
		RiskSummary:      riskSummary(avg, highCount, len(clauses), breakdown, categoryOrder),
		TopRiskAreas:     topRiskAreas(clauses, breakdown, categoryOrder, descriptions),
		RiskFactors:      uniqueFactors,
		ClauseBreakdown:  breakdown,
		Recommendations:  recommendations(overall, uniqueFactors, breakdown, categoryOrder),
		RiskDistribution: distribution(clauses),
	}
}

// EmptyAssessment is the fail-closed result for documents that produced
// no clauses.
func EmptyAssessment() legal.RiskAssessment {
	return legal.RiskAssessment{
		OverallRisk:     legal.RiskUnknown,
		RiskSummary:     "No clauses available for risk analysis",
		TopRiskAreas:    []legal.RiskArea{},
		RiskFactors:     []string{},
		ClauseBreakdown: map[legal.Category][]int{},
		Recommendations: []string{"Document analysis required"},
	}
}

// overallRisk applies the document-level verdict rules.  The high check
// runs first: a single catastrophic clause (score 9+) or a cluster of
// three high-risk clauses outweighs a moderate average.
func overallRisk(avg float64, maxScore, highCount int) legal.RiskLevel {
	switch {
	case avg >= 7 || maxScore >= 9 || highCount >= 3:
		return legal.RiskHigh
	case avg >= 5 || maxScore >= 7 || highCount >= 1:
		return legal.RiskMedium
	default:
		return legal.RiskLow
	}
}

func riskSummary(avg float64, highCount, total int, breakdown map[legal.Category][]int, order []legal.Category) string {
	parts := []string{}

	switch {
	case avg >= 7:
		parts = append(parts, "This document presents HIGH risk")
	case avg >= 5:
		parts = append(parts, "This document presents MEDIUM risk")
	default:
		parts = append(parts, "This document presents LOW risk")
	}

	if highCount > 0 {
		pct := float64(highCount) / float64(total) * 100
		parts = append(parts, fmt.Sprintf("%d out of %d clauses (%.1f%%) are high-risk", highCount, total, pct))
	}

	var highest []string
	for _, cat := range order {
		if maxOf(breakdown[cat]) >= 7 {
			highest = append(highest, strings.ReplaceAll(string(cat), "_", " "))
		}
	}
	if len(highest) > 0 {
		parts = append(parts, "Highest risk areas: "+strings.Join(highest, ", "))
	}

	return strings.Join(parts, ". ") + "."
}

// topRiskAreas emits a summary record for every category whose scores
// concentrate risk, sorted by average score with the top five kept.  The
// sample clause is the simplified text of the first clause in document
// order that hits the category maximum.
func topRiskAreas(clauses []legal.ClauseRecord, breakdown map[legal.Category][]int, order []legal.Category, descriptions map[string]string) []legal.RiskArea {
	areas := []legal.RiskArea{}

	for _, cat := range order {
		scores := breakdown[cat]
		avg := avgOf(scores)
		max := maxOf(scores)
		if avg < 6 && max < 8 {
			continue
		}

		sample := ""
		for _, cl := range clauses {
			if cl.Category == cat && cl.RiskScore == max {
				sample = cl.Simplified
				break
			}
		}

		desc, ok := descriptions[string(cat)]
		if !ok {
			desc = defaultRiskAreaDescription
		}

		areas = append(areas, legal.RiskArea{
			Area:         titleWords(string(cat)),
			AvgRiskScore: round1(avg),
			MaxRiskScore: max,
			ClauseCount:  len(scores),
			Description:  desc,
			SampleClause: sample,
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].AvgRiskScore > areas[j].AvgRiskScore
	})
	if len(areas) > 5 {
		areas = areas[:5]
	}
	return areas
}

// recommendations assembles the advice list: the mandatory tier message,
// factor-triggered items, per-category items for categories peaking at 8
// or above, and generic fallbacks when nothing specific fired.  Capped
// at ten entries.
func recommendations(overall legal.RiskLevel, factors []string, breakdown map[legal.Category][]int, order []legal.Category) []string {
	recs := []string{}

	switch overall {
	case legal.RiskHigh:
		recs = append(recs,
			"CRITICAL: This contract has significant risks. Strongly consider legal review before signing.",
			"Negotiate key terms to reduce your exposure, especially in liability and termination clauses.")
	case legal.RiskMedium:
		recs = append(recs,
			"CAUTION: This contract has moderate risks. Review carefully and consider legal consultation.",
			"Focus on understanding and potentially negotiating the higher-risk clauses.")
	default:
		recs = append(recs, "This contract appears to have manageable risk levels.")
	}

	triggers := []struct {
		substr string
		advice string
	}{
		{"unlimited liability", "Consider negotiating a liability cap to limit your financial exposure."},
		{"immediate termination", "Request a cure period or notice requirement for termination clauses."},
		{"one-sided", "Push for more balanced terms that don't heavily favor the other party."},
		{"ambiguous", "Request clarification on vague or ambiguous language."},
	}
	for _, tr := range triggers {
		for _, f := range factors {
			if strings.Contains(strings.ToLower(f), tr.substr) {
				recs = append(recs, tr.advice)
				break
			}
		}
	}

	categoryAdvice := map[legal.Category]string{
		legal.CategoryPayment:     "Review payment terms carefully - consider negotiating penalties and fees.",
		legal.CategoryLiability:   "The liability clause is high-risk - consider insurance or indemnification.",
		legal.CategoryTermination: "Termination terms are unfavorable - negotiate for more balanced conditions.",
	}
	for _, cat := range order {
		if maxOf(breakdown[cat]) < 8 {
			continue
		}
		if advice, ok := categoryAdvice[cat]; ok {
			recs = append(recs, advice)
		}
	}

	if len(recs) == 1 {
		recs = append(recs,
			"Ensure you understand all terms before signing.",
			"Keep copies of all documents and correspondence.")
	}

	if len(recs) > 10 {
		recs = recs[:10]
	}
	return recs
}

// distribution buckets clause scores into low (<4), medium (4-6), and
// high (7+) bands as percentages with one decimal place.
func distribution(clauses []legal.ClauseRecord) legal.RiskDistribution {
	var counts legal.RiskCounts
	for _, cl := range clauses {
		switch {
		case cl.RiskScore < 4:
			counts.Low++
		case cl.RiskScore < 7:
			counts.Medium++
		default:
			counts.High++
		}
	}
	total := float64(len(clauses))
	return legal.RiskDistribution{
		Low:    round1(float64(counts.Low) / total * 100),
		Medium: round1(float64(counts.Medium) / total * 100),
		High:   round1(float64(counts.High) / total * 100),
		Counts: counts,
	}
}

func dedupe(items []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func avgOf(scores []int) float64 {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

func maxOf(scores []int) int {
	max := 0
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	return max
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func titleWords(label string) string {
	words := strings.Split(label, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
