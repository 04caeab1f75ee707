// Package analyzer composes the intelligence components into the
// document-level operations: full analysis, comparison, question
// answering, and jurisdiction compliance checking.
package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/classifier"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/extractor"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/riskengine"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/segmenter"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/simplifier"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// displayContentLimit bounds the clause text stored for display; scoring
// always runs on the full fragment before truncation.
const displayContentLimit = 500

// Options are the orchestration tunables.
type Options struct {
	Segmentation segmenter.Options

	// MinSubstantialLength is the exclusive lower bound a fragment must
	// exceed at consumption time to be analysed as a clause.  It sits
	// below the segmenter's own discard threshold on purpose: the gap is
	// headroom for alternative segmentation strategies, so the two
	// thresholds must not be unified.
	MinSubstantialLength int
}

// DefaultOptions returns the standard orchestration limits.
func DefaultOptions() Options {
	return Options{
		Segmentation:         segmenter.DefaultOptions(),
		MinSubstantialLength: 50,
	}
}

// Analyzer is the engine facade.  All components share one immutable
// pattern table set; the Analyzer is safe for concurrent use across
// independent documents.
type Analyzer struct {
	log    logging.Logger
	tables *patterns.Tables
	opts   Options

	seg    *segmenter.Segmenter
	cls    *classifier.Classifier
	scorer *riskengine.Scorer
	agg    *riskengine.Aggregator
	simp   *simplifier.Simplifier
	ext    *extractor.Extractor
}

// New builds an Analyzer.  A nil ner disables recognizer-based party
// extraction; a nil logger falls back to the no-op logger.
func New(tables *patterns.Tables, ner extractor.NERModel, opts Options, log logging.Logger) *Analyzer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Analyzer{
		log:    log.Named("analyzer"),
		tables: tables,
		opts:   opts,
		seg:    segmenter.New(tables, opts.Segmentation),
		cls:    classifier.New(tables),
		scorer: riskengine.NewScorer(tables),
		agg:    riskengine.NewAggregator(),
		simp:   simplifier.New(tables),
		ext:    extractor.New(tables, ner),
	}
}

// Analyze produces the full analysis of one document.  It never panics
// past its boundary: any internal fault degrades to an analysis carrying
// an error-flavoured summary, no clauses, and an unknown document type.
func (a *Analyzer) Analyze(text, filename string) (result legal.DocumentAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("analysis fault, returning degraded result",
				logging.String("filename", filename), logging.Any("panic", r))
			result = degradedAnalysis(fmt.Sprintf("Error analyzing document: %v", r))
		}
	}()

	a.log.Info("starting document analysis",
		logging.String("filename", filename), logging.Int("text_len", len(text)))

	fragments := a.seg.Segment(text)

	clauses := []legal.ClauseRecord{}
	for i, frag := range fragments {
		if len(strings.TrimSpace(frag)) <= a.opts.MinSubstantialLength {
			continue
		}
		clauses = append(clauses, a.analyzeClause(frag, i))
	}

	assessment := a.agg.Aggregate(clauses, a.tables.RiskAreaDescriptions)

	result = legal.DocumentAnalysis{
		Summary:           a.summarize(text, filename, len(fragments)),
		Clauses:           clauses,
		DocumentType:      DetectDocumentType(text),
		Entities:          a.ext.Extract(text),
		RiskAssessment:    assessment,
		OverallRisk:       assessment.OverallRisk,
		AnalysisTimestamp: time.Now().UTC(),
	}

	a.log.Info("completed document analysis",
		logging.String("filename", filename),
		logging.Int("clauses", len(clauses)),
		logging.String("overall_risk", string(result.OverallRisk)))
	return result
}

// ExtractEntities runs entity extraction alone, with the same
// no-fault-escapes contract as Analyze.
func (a *Analyzer) ExtractEntities(text string) (entities map[string][]string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("entity extraction fault", logging.Any("panic", r))
			entities = extractor.EmptyEntities()
		}
	}()
	return a.ext.Extract(text)
}

// SummarizeEntities exposes the extractor's statistics view.
func (a *Analyzer) SummarizeEntities(entities map[string][]string) legal.EntitySummary {
	return extractor.Summarize(entities)
}

func (a *Analyzer) analyzeClause(fragment string, index int) legal.ClauseRecord {
	category := a.cls.Classify(fragment)
	score, factors := a.scorer.Score(fragment, category)
	content := fragment
	if len(content) > displayContentLimit {
		content = content[:displayContentLimit] + "..."
	}
	return legal.ClauseRecord{
		ID:          fmt.Sprintf("clause_%d", index),
		Index:       index,
		Title:       classifier.Title(category),
		Content:     content,
		Simplified:  a.simp.Simplify(fragment, category),
		Category:    category,
		RiskScore:   score,
		RiskLevel:   riskengine.LevelForScore(score),
		RiskFactors: factors,
	}
}

// summarize builds the document overview sentence from word count, clause
// count, and the themes touched by the text.
func (a *Analyzer) summarize(text, filename string, clauseCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This %s document (%s) contains approximately %d words. ",
		DetectDocumentType(text), filename, len(strings.Fields(text)))
	fmt.Fprintf(&b, "The document has been analyzed and contains %d major clauses or sections. ", clauseCount)

	lower := strings.ToLower(text)
	themeCategories := []struct {
		category legal.Category
		theme    string
	}{
		{legal.CategoryTermination, "contract termination"},
		{legal.CategoryPayment, "payment terms"},
		{legal.CategoryLiability, "liability provisions"},
		{legal.CategoryConfidentiality, "confidentiality requirements"},
	}
	var themes []string
	for _, tc := range themeCategories {
		if a.matchesCategory(lower, tc.category) {
			themes = append(themes, tc.theme)
		}
	}
	if len(themes) > 0 {
		fmt.Fprintf(&b, "Key areas covered include: %s.", strings.Join(themes, ", "))
	}
	return strings.TrimSpace(b.String())
}

func (a *Analyzer) matchesCategory(lower string, category legal.Category) bool {
	for _, cat := range a.tables.ClauseCategories {
		if cat.Category != category {
			continue
		}
		for _, p := range cat.Patterns {
			if p.MatchString(lower) {
				return true
			}
		}
	}
	return false
}

func degradedAnalysis(summary string) legal.DocumentAnalysis {
	return legal.DocumentAnalysis{
		Summary:           summary,
		Clauses:           []legal.ClauseRecord{},
		DocumentType:      "unknown",
		Entities:          extractor.EmptyEntities(),
		RiskAssessment:    riskengine.EmptyAssessment(),
		OverallRisk:       legal.RiskUnknown,
		AnalysisTimestamp: time.Now().UTC(),
	}
}

// DetectDocumentType classifies the document into a coarse contract kind
// from indicator phrases, most specific first.
func DetectDocumentType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "service agreement") || strings.Contains(lower, "services agreement"):
		return "Service Agreement"
	case strings.Contains(lower, "employment") && strings.Contains(lower, "agreement"):
		return "Employment Agreement"
	case strings.Contains(lower, "lease") || strings.Contains(lower, "rental"):
		return "Lease Agreement"
	case strings.Contains(lower, "non-disclosure") || strings.Contains(lower, "nda"):
		return "Non-Disclosure Agreement"
	case strings.Contains(lower, "license") && strings.Contains(lower, "agreement"):
		return "License Agreement"
	case strings.Contains(lower, "purchase") || strings.Contains(lower, "sale"):
		return "Purchase Agreement"
	case strings.Contains(lower, "partnership"):
		return "Partnership Agreement"
	case strings.Contains(lower, "contract"):
		return "Contract"
	default:
		return "Legal Document"
	}
}
