// Package patterns holds the static rule tables that drive clause
// classification, risk scoring, simplification, and entity extraction.
// The tables are pure data: constructed once via Default(), never mutated
// at runtime, and injected into each engine component rather than accessed
// as ambient global state.
package patterns

import (
	"regexp"

	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// CategoryPatterns binds one clause category to its match patterns.
// A clause belongs to the category if ANY pattern matches (logical OR).
type CategoryPatterns struct {
	Category legal.Category
	Patterns []*regexp.Regexp
}

// JurisdictionRules is the fixed compliance rule set of one jurisdiction.
type JurisdictionRules struct {
	Name                string
	RequiredClauses     []legal.Category
	RestrictedTerms     []string
	MandatoryProvisions []string
}

// Tables is the complete immutable rule configuration of the engine.
type Tables struct {
	// ClauseCategories is iterated in declaration order during
	// classification; the first matching category wins.
	ClauseCategories []CategoryPatterns

	// ObligationWords and PermissionWords drive the two-tier classifier
	// fallback when no category pattern matches.
	ObligationWords []string
	PermissionWords []string

	// SeparatorPatterns are the structural boundaries applied by the
	// segmenter, one progressive pass per pattern.
	SeparatorPatterns []*regexp.Regexp

	// HighRiskTerms, MediumRiskTerms, and LowRiskTerms are grouped by the
	// aspect of the contract they concern; scoring scans every group.
	HighRiskTerms   map[string][]string
	MediumRiskTerms map[string][]string
	LowRiskTerms    map[string][]string

	// BaseRiskScores maps a raw category label to its starting score.
	// Labels that miss the table (including the classifier's singular
	// "obligation") fall back to DefaultBaseRiskScore.
	BaseRiskScores map[string]int

	AmbiguousTerms     []string
	OneSidedIndicators []string
	BroadScopeTerms    []string
	TimePressureTerms  []string

	// SimplificationTemplates maps a category to its base plain-language
	// sentence; unknown categories use DefaultSimplification.
	SimplificationTemplates map[legal.Category]string

	// RiskAreaDescriptions explains what makes each clause type risky.
	RiskAreaDescriptions map[string]string

	// Entity extraction patterns, keyed by entity kind.
	EntityPatterns map[string][]*regexp.Regexp

	// Party extraction heuristics.
	BetweenPattern    *regexp.Regexp
	CompanyPatterns   []*regexp.Regexp
	FormalNamePattern *regexp.Regexp

	AddressPatterns []*regexp.Regexp
	EmailPattern    *regexp.Regexp
	PhonePatterns   []*regexp.Regexp

	// Context-window term lists: each hit extracts the full sentence
	// around the term.
	ObligationKeywords  []string
	PenaltyTerms        []string
	TerminationTriggers []string

	// QuestionKeywords maps a topic to the synonyms that connect a
	// free-text question to relevant clauses.
	QuestionKeywords map[string][]string

	// Jurisdictions maps a lower-case jurisdiction key to its rule set.
	// Unknown jurisdictions fall back to DefaultJurisdiction.
	Jurisdictions       map[string]JurisdictionRules
	DefaultJurisdiction string

	// Clause simplifier detail patterns.
	NoticeDaysPattern   *regexp.Regexp
	DollarAmountPattern *regexp.Regexp
}

// Scoring weights and bounds.
const (
	WeightHighRiskTerm   = 3
	WeightMediumRiskTerm = 2
	WeightLowRiskTerm    = -1
	WeightUnclear        = 2
	WeightOneSided       = 2
	WeightBroadScope     = 1
	WeightTimePressure   = 1

	DefaultBaseRiskScore = 4

	MinRiskScore = 1
	MaxRiskScore = 10
)

// DefaultSimplification is the explanation for clause types without a
// dedicated template.
const DefaultSimplification = "This is a standard contract provision."

// StandardClauseFactor is the sentinel risk factor for clauses with no
// findings.
const StandardClauseFactor = "Standard clause with typical terms"

func mustAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// Default constructs the platform's standard rule tables.  The result is
// treated as immutable; callers share a single instance freely across
// goroutines.
func Default() *Tables {
	return &Tables{
		ClauseCategories: []CategoryPatterns{
			{legal.CategoryTermination, mustAll(
				`terminat\w*`,
				`end\s+(?:of\s+)?(?:this\s+)?(?:agreement|contract)`,
				`expire\w*`,
				`dissolution`,
				`cancell\w*`,
			)},
			{legal.CategoryLiability, mustAll(
				`liabilit\w*`,
				`responsible\w*`,
				`damages?`,
				`loss\w*`,
				`indemnif\w*`,
				`hold\s+harmless`,
			)},
			{legal.CategoryPayment, mustAll(
				`payment\w*`,
				`pay\w*`,
				`fee\w*`,
				`cost\w*`,
				`price\w*`,
				`invoice\w*`,
				`billing`,
				`charge\w*`,
			)},
			{legal.CategoryConfidentiality, mustAll(
				`confidential\w*`,
				`non.?disclosure`,
				`proprietary`,
				`trade\s+secret\w*`,
				`private\w*`,
			)},
			{legal.CategoryIntellectualProperty, mustAll(
				`intellectual\s+property`,
				`copyright\w*`,
				`trademark\w*`,
				`patent\w*`,
				`ownership`,
			)},
			{legal.CategoryDisputeResolution, mustAll(
				`dispute\w*`,
				`arbitration`,
				`mediation`,
				`court\w*`,
				`jurisdiction`,
				`governing\s+law`,
			)},
		},

		ObligationWords: []string{"shall", "will", "must", "required"},
		PermissionWords: []string{"may", "can", "permitted", "allowed"},

		SeparatorPatterns: mustAll(
			`\n\s*\d+\.\s+`,        // numbered clauses like "1. "
			`\n\s*\([a-z]\)\s+`,    // lettered clauses like "(a) "
			`\n\s*[A-Z\s]{3,}:\s*\n`, // all-caps header lines
			`\n\s*SECTION\s+\d+`,
			`\n\s*ARTICLE\s+\d+`,
		),

		HighRiskTerms: map[string][]string{
			"liability": {
				"unlimited liability", "personal liability", "joint and several liability",
				"full liability", "complete liability", "absolute liability",
			},
			"termination": {
				"immediate termination", "terminate without cause", "terminate at will",
				"no notice termination", "summary termination", "terminate for convenience",
			},
			"payment": {
				"no refund", "non-refundable", "liquidated damages", "penalty clause",
				"forfeiture", "compound interest", "usurious interest",
			},
			"obligations": {
				"personal guarantee", "unlimited guarantee", "unconditional guarantee",
				"irrevocable commitment", "binding obligation",
			},
			"dispute": {
				"waive jury trial", "binding arbitration", "no appeal",
				"attorney fees to prevailing party", "forum selection",
			},
			"modification": {
				"unilateral modification", "sole discretion", "without consent",
				"may change at any time", "reserves the right",
			},
		},

		MediumRiskTerms: map[string][]string{
			"liability":   {"limited liability", "liability cap", "consequential damages excluded"},
			"termination": {"terminate with cause", "30 days notice", "material breach"},
			"payment":     {"late fees", "interest charges", "partial refund"},
			"obligations": {"best efforts", "commercially reasonable efforts", "due diligence"},
		},

		LowRiskTerms: map[string][]string{
			"liability":   {"mutual liability limitation", "liability excluded", "no liability"},
			"termination": {"terminate for convenience with notice", "mutual termination", "cure period"},
			"payment":     {"pro-rated refund", "reasonable fees", "market rate"},
		},

		BaseRiskScores: map[string]int{
			"termination":           6,
			"liability":             7,
			"payment":               5,
			"confidentiality":       3,
			"intellectual_property": 4,
			"dispute_resolution":    5,
			"obligations":           5,
			"warranties":            4,
			"indemnification":       7,
			"force_majeure":         2,
			"general":               4,
		},

		AmbiguousTerms:     []string{"reasonable", "appropriate", "satisfactory", "adequate", "fair"},
		OneSidedIndicators: []string{"sole discretion", "absolute right", "unilateral", "without limitation", "at our option", "we may", "company reserves"},
		BroadScopeTerms:    []string{"all", "any", "every", "entire", "complete", "total"},
		TimePressureTerms:  []string{"immediately", "forthwith", "without delay", "urgently"},

		SimplificationTemplates: map[legal.Category]string{
			legal.CategoryTermination:          "This explains how either party can end the contract.",
			legal.CategoryLiability:            "This describes who is responsible if something goes wrong.",
			legal.CategoryPayment:              "This covers how much you pay and when payments are due.",
			legal.CategoryConfidentiality:      "This requires keeping shared information private.",
			legal.CategoryIntellectualProperty: "This defines who owns ideas and creative work.",
			legal.CategoryDisputeResolution:    "This explains how to resolve disagreements.",
			legal.CategoryObligation:           "This describes what you must do under the contract.",
			legal.CategoryRight:                "This explains what you're allowed to do.",
		},

		RiskAreaDescriptions: map[string]string{
			"liability":             "Defines your financial responsibility if something goes wrong",
			"termination":           "Controls how and when the contract can be ended",
			"payment":               "Governs payment obligations and potential penalties",
			"indemnification":       "Requires you to protect the other party from certain losses",
			"dispute_resolution":    "Determines how conflicts will be resolved",
			"obligations":           "Specifies what you must do under the contract",
			"warranties":            "Contains promises about performance or quality",
			"intellectual_property": "Governs ownership of ideas and creative work",
			"confidentiality":       "Controls sharing of sensitive information",
			"force_majeure":         "Addresses what happens during extraordinary circumstances",
		},

		EntityPatterns: map[string][]*regexp.Regexp{
			"dates": mustAll(
				`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`,
				`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`,
				`\b(?i:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`,
				`\b\d{1,2}(?:st|nd|rd|th)?\s+(?i:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`,
				`(?i)\b(?:within|after|before)\s+\d+\s+(?:days?|weeks?|months?|years?)\b`,
				`(?i)\b\d+\s+(?:days?|weeks?|months?|years?)\s+(?:from|after|before)\b`,
			),
			"amounts": mustAll(
				`\$[\d,]+(?:\.\d{2})?`,
				`(?i)USD\s*[\d,]+(?:\.\d{2})?`,
				`(?i)INR\s*[\d,]+(?:\.\d{2})?`,
				`(?i)EUR\s*[\d,]+(?:\.\d{2})?`,
				`(?i)\b(?:dollars?|rupees?|euros?)\s*[\d,]+(?:\.\d{2})?\b`,
				`(?i)\b(?:one|two|three|four|five|six|seven|eight|nine|ten|hundred|thousand|million|billion)\s+(?:dollars?|rupees?|euros?)\b`,
			),
			"percentages": mustAll(
				`\b\d+(?:\.\d+)?%`,
				`(?i)\b\d+(?:\.\d+)?\s*percent\b`,
			),
			"obligations": mustAll(
				`(?i)(?:shall|must|will|required to|obligated to|agrees to)\s+[^.]{10,100}`,
				`(?i)(?:responsible for|liable for|duty to)\s+[^.]{10,100}`,
			),
			"penalties": mustAll(
				`(?i)(?:penalty|fine|liquidated damages|late fee)\s+[^.]{10,100}`,
				`(?i)(?:breach|default|violation)\s+[^.]{10,100}`,
			),
			"termination_conditions": mustAll(
				`(?i)(?:terminate|end|cancel|expire)\s+[^.]{10,100}`,
				`(?i)(?:upon|after|within)\s+\d+\s+days?\s+notice`,
			),
		},

		BetweenPattern: regexp.MustCompile(`(?i)between\s+([^,\n]+?)\s+(?:and|&)\s+([^,\n]+?)(?:\s|,|\.)`),
		CompanyPatterns: mustAll(
			`\b[A-Z][^,\n]*?LLC[^,\n]*?\b`,
			`\b[A-Z][^,\n]*?Inc[^,\n]*?\b`,
			`\b[A-Z][^,\n]*?Corp[^,\n]*?\b`,
			`\b[A-Z][^,\n]*?Ltd[^,\n]*?\b`,
			`\b[A-Z][^,\n]*?Company[^,\n]*?\b`,
			`\b[A-Z][^,\n]*?Corporation[^,\n]*?\b`,
			`\b[A-Z][^,\n]*?Limited[^,\n]*?\b`,
			`\b[A-Z][^,\n]*?Partnership[^,\n]*?\b`,
		),
		FormalNamePattern: regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`),

		AddressPatterns: mustAll(
			`\d+\s+[A-Z][^,\n]*?(?:Street|St\.|Avenue|Ave\.|Road|Rd\.|Boulevard|Blvd\.)[^,\n]*`,
			`[A-Z][a-z]+,\s*[A-Z]{2}\s*\d{5}(?:-\d{4})?`,
		),
		EmailPattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		PhonePatterns: mustAll(
			`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`,
			`\+\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`,
			`\b\d{10}\b`,
		),

		ObligationKeywords: []string{
			"shall provide", "must deliver", "required to submit",
			"responsible for maintaining", "agrees to perform",
			"undertakes to", "commits to", "promises to",
		},
		PenaltyTerms: []string{
			"late fee", "interest charge", "liquidated damages",
			"penalty clause", "forfeiture", "termination for cause",
		},
		TerminationTriggers: []string{
			"material breach", "failure to pay", "insolvency",
			"bankruptcy", "change of control", "mutual agreement",
		},

		QuestionKeywords: map[string][]string{
			"terminate":    {"termination", "end", "cancel"},
			"pay":          {"payment", "cost", "fee", "price"},
			"liability":    {"liable", "responsible", "damages"},
			"confidential": {"confidential", "secret", "private"},
			"breach":       {"breach", "violation", "default"},
			"obligation":   {"obligation", "duty", "requirement", "must"},
		},

		Jurisdictions: map[string]JurisdictionRules{
			"indian": {
				Name:                "Indian Contract Act",
				RequiredClauses:     []legal.Category{legal.CategoryTermination, legal.CategoryDisputeResolution},
				RestrictedTerms:     []string{"unlimited liability", "waiver of statutory rights"},
				MandatoryProvisions: []string{"governing law clause", "jurisdiction clause"},
			},
			"us": {
				Name:                "United States",
				RequiredClauses:     []legal.Category{legal.CategoryTermination, legal.CategoryLiability},
				RestrictedTerms:     []string{"penalty clauses", "unconscionable terms"},
				MandatoryProvisions: []string{"choice of law", "dispute resolution"},
			},
			"eu": {
				Name:                "European Union",
				RequiredClauses:     []legal.Category{legal.CategoryConfidentiality, legal.CategoryLiability},
				RestrictedTerms:     []string{"unfair contract terms", "consumer right waivers"},
				MandatoryProvisions: []string{"GDPR compliance", "cooling-off period"},
			},
			"uk": {
				Name:                "United Kingdom",
				RequiredClauses:     []legal.Category{legal.CategoryTermination, legal.CategoryDisputeResolution},
				RestrictedTerms:     []string{"unfair contract terms", "penalty clauses"},
				MandatoryProvisions: []string{"governing law clause", "dispute resolution"},
			},
		},
		DefaultJurisdiction: "indian",

		NoticeDaysPattern:   regexp.MustCompile(`(\d+)\s+days?\s+notice`),
		DollarAmountPattern: regexp.MustCompile(`\$[\d,]+`),
	}
}
