package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// Compare reports the structural and risk differences between two
// analysed documents.
func (a *Analyzer) Compare(doc1, doc2 legal.DocumentAnalysis) legal.ComparisonReport {
	types1 := categorySet(doc1.Clauses)
	types2 := categorySet(doc2.Clauses)

	report := legal.ComparisonReport{
		Doc1Clauses:    len(doc1.Clauses),
		Doc2Clauses:    len(doc2.Clauses),
		Doc1Risk:       riskOrUnknown(doc1.OverallRisk),
		Doc2Risk:       riskOrUnknown(doc2.OverallRisk),
		KeyDifferences: []string{},
		SimilarClauses: intersect(types1, types2),
		UniqueToDoc1:   subtract(types1, types2),
		UniqueToDoc2:   subtract(types2, types1),
		RiskComparison: compareRisks(doc1, doc2),
	}

	if report.Doc1Risk != report.Doc2Risk {
		report.KeyDifferences = append(report.KeyDifferences, fmt.Sprintf(
			"Risk levels differ: Document 1 is %s risk, Document 2 is %s risk",
			report.Doc1Risk, report.Doc2Risk))
	}
	if diff := absInt(len(doc1.Clauses) - len(doc2.Clauses)); diff > 2 {
		report.KeyDifferences = append(report.KeyDifferences, fmt.Sprintf(
			"Significant difference in complexity: %d more clauses in one document", diff))
	}
	return report
}

// compareRisks contrasts the average clause scores.  A document with no
// clauses contributes the neutral midpoint of 5 rather than skewing the
// delta to zero.
func compareRisks(doc1, doc2 legal.DocumentAnalysis) legal.RiskComparison {
	avg1 := averageClauseScore(doc1.Clauses)
	avg2 := averageClauseScore(doc2.Clauses)

	rec := "Both documents have similar risk levels"
	if avg1 > avg2 {
		rec = "Document 1 is riskier"
	} else if avg2 > avg1 {
		rec = "Document 2 is riskier"
	}

	return legal.RiskComparison{
		Doc1AverageRisk: round1(avg1),
		Doc2AverageRisk: round1(avg2),
		RiskDifference:  round1(math.Abs(avg1 - avg2)),
		Recommendation:  rec,
	}
}

func averageClauseScore(clauses []legal.ClauseRecord) float64 {
	if len(clauses) == 0 {
		return 5
	}
	sum := 0
	for _, cl := range clauses {
		sum += cl.RiskScore
	}
	return float64(sum) / float64(len(clauses))
}

func categorySet(clauses []legal.ClauseRecord) map[legal.Category]struct{} {
	set := make(map[legal.Category]struct{}, len(clauses))
	for _, cl := range clauses {
		set[cl.Category] = struct{}{}
	}
	return set
}

func intersect(a, b map[legal.Category]struct{}) []legal.Category {
	out := []legal.Category{}
	for cat := range a {
		if _, ok := b[cat]; ok {
			out = append(out, cat)
		}
	}
	sortCategories(out)
	return out
}

func subtract(a, b map[legal.Category]struct{}) []legal.Category {
	out := []legal.Category{}
	for cat := range a {
		if _, ok := b[cat]; !ok {
			out = append(out, cat)
		}
	}
	sortCategories(out)
	return out
}

func sortCategories(cats []legal.Category) {
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
}

func riskOrUnknown(level legal.RiskLevel) legal.RiskLevel {
	if level == "" {
		return legal.RiskUnknown
	}
	return level
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
