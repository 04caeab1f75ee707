// Package riskengine scores clause risk and aggregates clause scores into
// a document-level risk assessment.
package riskengine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// Scorer assigns a bounded risk score to a single clause.  It is stateless
// apart from the shared pattern tables and safe for concurrent use.
type Scorer struct {
	tables *patterns.Tables

	// broadScope holds one whole-word matcher per broad-scope term,
	// compiled once so the heuristic scan stays allocation-free.
	broadScope []*regexp.Regexp
}

// NewScorer builds a Scorer over the given pattern tables.
func NewScorer(tables *patterns.Tables) *Scorer {
	broad := make([]*regexp.Regexp, 0, len(tables.BroadScopeTerms))
	for _, term := range tables.BroadScopeTerms {
		broad = append(broad, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return &Scorer{tables: tables, broadScope: broad}
}

// Score computes the risk score of a clause in [1,10] together with the
// factor strings explaining it.  The model starts from the category base
// score and adjusts additively: term-table hits, category-specific rules,
// then generic language heuristics.  The factor list is never empty; a
// clause with no findings carries the standard-clause sentinel.
//
// The base-score lookup is by raw category label and intentionally keys
// the label "obligations" while the classifier emits "obligation"; the
// singular label therefore takes the default base of 4.  Downstream
// consumers depend on that behaviour, so the two spellings must not be
// reconciled.
func (s *Scorer) Score(fragment string, category legal.Category) (int, []string) {
	lower := strings.ToLower(fragment)

	score, ok := s.tables.BaseRiskScores[string(category)]
	if !ok {
		score = patterns.DefaultBaseRiskScore
	}
	factors := []string{}

	for _, group := range termGroupOrder(s.tables.HighRiskTerms) {
		for _, term := range s.tables.HighRiskTerms[group] {
			if strings.Contains(lower, term) {
				score += patterns.WeightHighRiskTerm
				factors = append(factors, fmt.Sprintf("High-risk term: '%s'", term))
			}
		}
	}
	for _, group := range termGroupOrder(s.tables.MediumRiskTerms) {
		for _, term := range s.tables.MediumRiskTerms[group] {
			if strings.Contains(lower, term) {
				score += patterns.WeightMediumRiskTerm
				factors = append(factors, fmt.Sprintf("Medium-risk term: '%s'", term))
			}
		}
	}
	for _, group := range termGroupOrder(s.tables.LowRiskTerms) {
		for _, term := range s.tables.LowRiskTerms[group] {
			if strings.Contains(lower, term) {
				score += patterns.WeightLowRiskTerm
				factors = append(factors, fmt.Sprintf("Protective term: '%s'", term))
			}
		}
	}

	score, factors = s.applyCategoryRules(lower, category, score, factors)
	score, factors = s.applyHeuristics(lower, score, factors)

	if score < patterns.MinRiskScore {
		score = patterns.MinRiskScore
	}
	if score > patterns.MaxRiskScore {
		score = patterns.MaxRiskScore
	}

	if len(factors) == 0 {
		factors = append(factors, patterns.StandardClauseFactor)
	}
	return score, factors
}

// applyCategoryRules layers the per-category adjustments on top of the
// term-table result.  The liability checks are mutually exclusive and
// "unlimited" is tested first.
func (s *Scorer) applyCategoryRules(lower string, category legal.Category, score int, factors []string) (int, []string) {
	switch category {
	case legal.CategoryTermination:
		if strings.Contains(lower, "immediate") || strings.Contains(lower, "without notice") {
			score += 2
			factors = append(factors, "Allows immediate termination")
		}
	case legal.CategoryLiability:
		if strings.Contains(lower, "unlimited") {
			score += 3
			factors = append(factors, "Unlimited liability exposure")
		} else if strings.Contains(lower, "limited") {
			score--
			factors = append(factors, "Liability is limited")
		}
	case legal.CategoryPayment:
		if strings.Contains(lower, "penalty") || strings.Contains(lower, "liquidated damages") {
			score += 2
			factors = append(factors, "Contains payment penalties")
		}
	}
	return score, factors
}

// applyHeuristics adds the category-independent language signals.  The
// one-sided and time-pressure scans stop at the first hit so each signal
// contributes at most once.
func (s *Scorer) applyHeuristics(lower string, score int, factors []string) (int, []string) {
	ambiguous := 0
	for _, term := range s.tables.AmbiguousTerms {
		if strings.Contains(lower, term) {
			ambiguous++
		}
	}
	if ambiguous >= 2 {
		score += patterns.WeightUnclear
		factors = append(factors, "Contains ambiguous language")
	}

	for _, indicator := range s.tables.OneSidedIndicators {
		if strings.Contains(lower, indicator) {
			score += patterns.WeightOneSided
			factors = append(factors, "One-sided clause favoring other party")
			break
		}
	}

	broad := 0
	for _, re := range s.broadScope {
		if re.MatchString(lower) {
			broad++
		}
	}
	if broad >= 3 {
		score += patterns.WeightBroadScope
		factors = append(factors, "Unusually broad scope")
	}

	for _, term := range s.tables.TimePressureTerms {
		if strings.Contains(lower, term) {
			score += patterns.WeightTimePressure
			factors = append(factors, "Contains time pressure elements")
			break
		}
	}
	return score, factors
}

// termGroupOrder returns the group keys of a term table in a fixed order
// so that factor lists are deterministic across runs.
func termGroupOrder(table map[string][]string) []string {
	fixed := []string{"liability", "termination", "payment", "obligations", "dispute", "modification"}
	out := make([]string, 0, len(table))
	for _, g := range fixed {
		if _, ok := table[g]; ok {
			out = append(out, g)
		}
	}
	return out
}

// LevelForScore maps a clamped clause score to its risk level using the
// primary thresholds.
func LevelForScore(score int) legal.RiskLevel {
	switch {
	case score >= 7:
		return legal.RiskHigh
	case score >= 4:
		return legal.RiskMedium
	default:
		return legal.RiskLow
	}
}

// DisplayBucket maps a score to the coarser badge tier used by display
// surfaces.  Its medium band deliberately extends to 7 and differs from
// LevelForScore; the two tables serve different consumers and must stay
// separate.
func DisplayBucket(score int) legal.RiskLevel {
	switch {
	case score >= 8:
		return legal.RiskHigh
	case score >= 4:
		return legal.RiskMedium
	default:
		return legal.RiskLow
	}
}
