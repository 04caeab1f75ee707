package riskengine

import (
	"strings"
	"testing"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

func TestScoreOneSidedTerminationClause(t *testing.T) {
	s := NewScorer(patterns.Default())

	clause := "The Company may terminate this agreement immediately without notice for any reason, at Company's sole discretion."
	score, factors := s.Score(clause, legal.CategoryTermination)

	// base 6, "sole discretion" +3, immediate termination rule +2,
	// one-sided +2, time pressure +1: clamped to 10
	if score != 10 {
		t.Fatalf("score = %d, want 10", score)
	}
	if LevelForScore(score) != legal.RiskHigh {
		t.Fatalf("level = %q, want high", LevelForScore(score))
	}

	wantFactors := []string{
		"High-risk term: 'sole discretion'",
		"Allows immediate termination",
		"One-sided clause favoring other party",
		"Contains time pressure elements",
	}
	for _, want := range wantFactors {
		found := false
		for _, f := range factors {
			if f == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing factor %q in %v", want, factors)
		}
	}
}

func TestScoreBalancedTerminationClause(t *testing.T) {
	s := NewScorer(patterns.Default())

	clause := "Either party may terminate this Agreement upon 30 days written notice to the other party."
	score, factors := s.Score(clause, legal.CategoryTermination)

	if score != 6 {
		t.Fatalf("score = %d, want base termination score 6", score)
	}
	if lvl := LevelForScore(score); lvl != legal.RiskMedium {
		t.Fatalf("level = %q, want medium", lvl)
	}
	if len(factors) != 1 || factors[0] != patterns.StandardClauseFactor {
		t.Fatalf("expected only the standard-clause sentinel, got %v", factors)
	}
}

func TestScoreLiabilityRulesAreExclusive(t *testing.T) {
	s := NewScorer(patterns.Default())

	// "unlimited" wins even when "limited" is also present (as a substring
	// and as a standalone word).
	clause := "Contractor accepts unlimited responsibility and limited recourse for all damages arising hereunder."
	_, factors := s.Score(clause, legal.CategoryLiability)

	var sawUnlimited, sawLimited bool
	for _, f := range factors {
		if f == "Unlimited liability exposure" {
			sawUnlimited = true
		}
		if f == "Liability is limited" {
			sawLimited = true
		}
	}
	if !sawUnlimited || sawLimited {
		t.Fatalf("unlimited rule must win exclusively, factors: %v", factors)
	}
}

func TestScoreAmbiguousLanguage(t *testing.T) {
	s := NewScorer(patterns.Default())

	clause := "Supplier renders the services in a reasonable and appropriate manner as agreed." // two ambiguous terms
	score, factors := s.Score(clause, legal.CategoryGeneral)

	if score != 6 { // general base 4 + unclear language 2
		t.Fatalf("score = %d, want 6", score)
	}
	if len(factors) != 1 || factors[0] != "Contains ambiguous language" {
		t.Fatalf("factors = %v", factors)
	}
}

func TestScoreClampedToBounds(t *testing.T) {
	s := NewScorer(patterns.Default())

	risky := "Unlimited liability with personal guarantee, no refund, immediate termination at sole discretion, " +
		"penalty clause and liquidated damages apply immediately without notice."
	score, _ := s.Score(risky, legal.CategoryLiability)
	if score != 10 {
		t.Fatalf("heavily loaded clause should clamp to 10, got %d", score)
	}

	// force_majeure base 2 with three protective terms lands below 1
	protective := "Mutual liability limitation applies; no liability for either side; liability excluded beyond fees paid."
	score, _ = s.Score(protective, legal.Category("force_majeure"))
	if score != 1 {
		t.Fatalf("heavily protective clause should clamp to 1, got %d", score)
	}
}

func TestScoreHighRiskPhraseNeverDecreasesScore(t *testing.T) {
	s := NewScorer(patterns.Default())

	neutral := "The parties will meet quarterly to review the roadmap and service levels in good faith."
	base, _ := s.Score(neutral, legal.CategoryGeneral)
	bumped, _ := s.Score(neutral+" This is an irrevocable commitment.", legal.CategoryGeneral)

	if bumped < base {
		t.Fatalf("adding a high-risk phrase decreased the score: %d -> %d", base, bumped)
	}
}

func TestScoreObligationLabelTakesDefaultBase(t *testing.T) {
	s := NewScorer(patterns.Default())

	// The classifier emits the singular label, which is absent from the
	// plural-keyed base table and therefore scores the default base.
	neutral := "Vendor shall maintain the registry in the manner described in Exhibit B of this document."
	score, _ := s.Score(neutral, legal.CategoryObligation)
	if score != patterns.DefaultBaseRiskScore {
		t.Fatalf("singular obligation label should use default base %d, got %d", patterns.DefaultBaseRiskScore, score)
	}
}

func TestLevelThresholds(t *testing.T) {
	cases := []struct {
		score   int
		primary legal.RiskLevel
		display legal.RiskLevel
	}{
		{1, legal.RiskLow, legal.RiskLow},
		{3, legal.RiskLow, legal.RiskLow},
		{4, legal.RiskMedium, legal.RiskMedium},
		{6, legal.RiskMedium, legal.RiskMedium},
		{7, legal.RiskHigh, legal.RiskMedium}, // the two tables diverge here
		{8, legal.RiskHigh, legal.RiskHigh},
		{10, legal.RiskHigh, legal.RiskHigh},
	}
	for _, tc := range cases {
		if got := LevelForScore(tc.score); got != tc.primary {
			t.Errorf("LevelForScore(%d) = %q, want %q", tc.score, got, tc.primary)
		}
		if got := DisplayBucket(tc.score); got != tc.display {
			t.Errorf("DisplayBucket(%d) = %q, want %q", tc.score, got, tc.display)
		}
	}
}

func TestScoreDeterministicFactorOrder(t *testing.T) {
	s := NewScorer(patterns.Default())
	clause := "Personal guarantee with liquidated damages, binding arbitration and material breach terms, best efforts required."

	_, first := s.Score(clause, legal.CategoryPayment)
	for i := 0; i < 5; i++ {
		_, again := s.Score(clause, legal.CategoryPayment)
		if strings.Join(again, "|") != strings.Join(first, "|") {
			t.Fatalf("factor order not deterministic: %v vs %v", first, again)
		}
	}
}
