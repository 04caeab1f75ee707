// Package legal defines the shared data transfer types of the
// Legal-AI-Analyzer platform: clause records, document analyses, risk
// assessments, entity summaries, and the report types returned by the
// comparison, question-answering, and compliance operations.
//
// All types here are plain values.  They are created fresh on every analysis
// call and are never mutated after being returned; re-analysis produces a
// brand-new DocumentAnalysis rather than updating the old one.
package legal

import "time"

// Category is a clause-type label from the closed taxonomy.
type Category string

// Clause categories, in classifier declaration order.  The order matters:
// when patterns from several categories match the same clause, the first
// declared category wins.
const (
	CategoryTermination          Category = "termination"
	CategoryLiability            Category = "liability"
	CategoryPayment              Category = "payment"
	CategoryConfidentiality      Category = "confidentiality"
	CategoryIntellectualProperty Category = "intellectual_property"
	CategoryDisputeResolution    Category = "dispute_resolution"
	CategoryObligation           Category = "obligation"
	CategoryRight                Category = "right"
	CategoryGeneral              Category = "general"
)

// String returns the raw category label.
func (c Category) String() string { return string(c) }

// RiskLevel is a coarse three-tier risk classification, with "unknown"
// reserved for documents that produced no clauses at all.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskUnknown RiskLevel = "unknown"
)

// String returns the raw risk level label.
func (r RiskLevel) String() string { return string(r) }

// ClauseRecord is one classified, scored clause of a document.
type ClauseRecord struct {
	// ID is a stable per-document identifier of the form "clause_<index>".
	ID string `json:"id"`

	// Index is the 0-based ordinal position within the document.
	Index int `json:"index"`

	// Title is the human-readable category name ("Dispute Resolution").
	Title string `json:"title"`

	// Content is the clause text for display, truncated to 500 characters.
	// Risk scoring always runs on the untruncated segmented text before
	// this record is built.
	Content string `json:"content"`

	// Simplified is the plain-language explanation of the clause.
	Simplified string `json:"simplified"`

	// Category is the clause-type label assigned by the classifier.
	Category Category `json:"clause_type"`

	// RiskScore is an integer in [1,10]; higher is riskier.
	RiskScore int `json:"risk_score"`

	// RiskLevel is derived from RiskScore via fixed thresholds; the two
	// fields are never set independently.
	RiskLevel RiskLevel `json:"risk_level"`

	// RiskFactors lists the human-readable reasons behind RiskScore.
	// Never empty: a clause with no findings carries the standard-clause
	// sentinel.
	RiskFactors []string `json:"risk_factors"`
}

// RiskArea summarises the risk concentration of one clause category.
type RiskArea struct {
	Area         string  `json:"area"`
	AvgRiskScore float64 `json:"avg_risk_score"`
	MaxRiskScore int     `json:"max_risk_score"`
	ClauseCount  int     `json:"clause_count"`
	Description  string  `json:"description"`
	SampleClause string  `json:"sample_clause"`
}

// RiskCounts holds raw clause counts per risk band.
type RiskCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// RiskDistribution holds the percentage of clauses per risk band
// (one decimal place) together with the raw counts.
type RiskDistribution struct {
	Low    float64    `json:"low"`
	Medium float64    `json:"medium"`
	High   float64    `json:"high"`
	Counts RiskCounts `json:"counts"`
}

// RiskAssessment is the document-level aggregation of clause risk scores.
type RiskAssessment struct {
	OverallRisk      RiskLevel          `json:"overall_risk"`
	RiskScore        float64            `json:"risk_score"`
	MaxRiskScore     int                `json:"max_risk_score"`
	HighRiskClauses  int                `json:"high_risk_clauses"`
	TotalClauses     int                `json:"total_clauses"`
	RiskSummary      string             `json:"risk_summary"`
	TopRiskAreas     []RiskArea         `json:"top_risk_areas"`
	RiskFactors      []string           `json:"risk_factors"`
	ClauseBreakdown  map[Category][]int `json:"clause_breakdown"`
	Recommendations  []string           `json:"recommendations"`
	RiskDistribution RiskDistribution   `json:"risk_distribution"`
}

// EntitySummary is the statistics view over an extraction result.
type EntitySummary struct {
	TotalEntitiesFound int            `json:"total_entities_found"`
	EntityBreakdown    map[string]int `json:"entity_breakdown"`
	HasParties         bool           `json:"has_parties"`
	HasFinancialTerms  bool           `json:"has_financial_terms"`
	HasDeadlines       bool           `json:"has_deadlines"`
	HasPenalties       bool           `json:"has_penalties"`
	ComplexityScore    int            `json:"complexity_score"`
	Insights           []string       `json:"insights"`
}

// DocumentAnalysis is the complete result of analysing one document.
type DocumentAnalysis struct {
	Summary           string              `json:"summary"`
	Clauses           []ClauseRecord      `json:"clauses"`
	DocumentType      string              `json:"document_type"`
	Entities          map[string][]string `json:"entities"`
	RiskAssessment    RiskAssessment      `json:"risk_assessment"`
	OverallRisk       RiskLevel           `json:"overall_risk"`
	AnalysisTimestamp time.Time           `json:"analysis_timestamp"`
}

// RiskComparison compares the average clause risk of two documents.
type RiskComparison struct {
	Doc1AverageRisk float64 `json:"doc1_average_risk"`
	Doc2AverageRisk float64 `json:"doc2_average_risk"`
	RiskDifference  float64 `json:"risk_difference"`
	Recommendation  string  `json:"recommendation"`
}

// ComparisonReport highlights structural and risk differences between two
// analysed documents.
type ComparisonReport struct {
	Doc1Clauses    int            `json:"doc1_clauses"`
	Doc2Clauses    int            `json:"doc2_clauses"`
	Doc1Risk       RiskLevel      `json:"doc1_risk"`
	Doc2Risk       RiskLevel      `json:"doc2_risk"`
	KeyDifferences []string       `json:"key_differences"`
	SimilarClauses []Category     `json:"similar_clauses"`
	UniqueToDoc1   []Category     `json:"unique_to_doc1"`
	UniqueToDoc2   []Category     `json:"unique_to_doc2"`
	RiskComparison RiskComparison `json:"risk_comparison"`
}

// ComplianceReport is the result of checking a document's clauses against a
// jurisdiction rule set.
type ComplianceReport struct {
	Jurisdiction       string   `json:"jurisdiction"`
	ComplianceLevel    string   `json:"compliance_level"`
	ComplianceScore    float64  `json:"compliance_score"`
	Issues             []string `json:"issues"`
	Recommendations    []string `json:"recommendations"`
	CheckedProvisions  []string `json:"checked_provisions"`
}

// DocumentRecord is a stored document together with its latest analysis.
// It belongs to the service layer; the analysis engine itself never
// persists anything.
type DocumentRecord struct {
	ID           string           `json:"document_id"`
	Filename     string           `json:"filename"`
	UploadTime   time.Time        `json:"upload_time"`
	Text         string           `json:"-"`
	Analysis     DocumentAnalysis `json:"analysis"`
	LastAnalyzed time.Time        `json:"last_analyzed"`
}
