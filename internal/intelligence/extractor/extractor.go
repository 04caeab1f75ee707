// Package extractor pulls structured entities out of legal document text:
// parties, dates, monetary amounts, obligations, penalties, contact
// details, and termination conditions.
package extractor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// Entity kind keys of the extraction result.  Every key is always present
// in the returned map, empty or not.
var entityKinds = []string{
	"parties", "dates", "amounts", "obligations", "penalties",
	"addresses", "email_addresses", "phone_numbers", "percentages",
	"termination_conditions",
}

// maxEntitiesPerKind caps each kind's result list after cleaning.
const maxEntitiesPerKind = 10

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extractor runs the rule-based extraction, optionally enriched by a
// statistical recognizer for party names.  Safe for concurrent use.
type Extractor struct {
	tables *patterns.Tables
	ner    NERModel

	// sentence-context matchers compiled once per keyword list
	obligationCtx  []*regexp.Regexp
	penaltyCtx     []*regexp.Regexp
	terminationCtx []*regexp.Regexp
}

// New builds an Extractor.  A nil ner selects the no-op recognizer.
func New(tables *patterns.Tables, ner NERModel) *Extractor {
	if ner == nil {
		ner = NewNopNER()
	}
	return &Extractor{
		tables:         tables,
		ner:            ner,
		obligationCtx:  contextMatchers(tables.ObligationKeywords),
		penaltyCtx:     contextMatchers(tables.PenaltyTerms),
		terminationCtx: contextMatchers(tables.TerminationTriggers),
	}
}

// contextMatchers compiles one whole-sentence matcher per term.
func contextMatchers(terms []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(terms))
	for _, t := range terms {
		out = append(out, regexp.MustCompile(`(?i)[^.]*`+regexp.QuoteMeta(t)+`[^.]*`))
	}
	return out
}

// Extract returns every entity kind found in the text.  Each kind's list
// is cleaned, deduplicated case-insensitively with first-seen casing
// preserved, sorted, and capped.  The map always carries all kinds.
func (e *Extractor) Extract(text string) map[string][]string {
	entities := map[string][]string{
		"parties":                e.extractParties(text),
		"dates":                  e.matchKind(text, "dates"),
		"amounts":                e.matchKind(text, "amounts"),
		"obligations":            e.extractWithContext(text, "obligations", e.obligationCtx),
		"penalties":              e.extractWithContext(text, "penalties", e.penaltyCtx),
		"addresses":              matchAll(e.tables.AddressPatterns, text),
		"email_addresses":        e.tables.EmailPattern.FindAllString(text, -1),
		"phone_numbers":          matchAll(e.tables.PhonePatterns, text),
		"percentages":            e.matchKind(text, "percentages"),
		"termination_conditions": e.extractWithContext(text, "termination_conditions", e.terminationCtx),
	}

	for kind, values := range entities {
		entities[kind] = cleanAndDeduplicate(values)
	}
	return entities
}

// EmptyEntities returns the all-kinds-present empty result used when
// extraction is skipped or degraded.
func EmptyEntities() map[string][]string {
	out := make(map[string][]string, len(entityKinds))
	for _, k := range entityKinds {
		out[k] = []string{}
	}
	return out
}

func (e *Extractor) matchKind(text, kind string) []string {
	return matchAll(e.tables.EntityPatterns[kind], text)
}

func matchAll(res []*regexp.Regexp, text string) []string {
	var out []string
	for _, re := range res {
		out = append(out, re.FindAllString(text, -1)...)
	}
	return out
}

// extractWithContext unions the kind's regex matches with full-sentence
// context around each keyword hit, keeping only substantial snippets.
func (e *Extractor) extractWithContext(text, kind string, ctx []*regexp.Regexp) []string {
	found := matchAll(e.tables.EntityPatterns[kind], text)
	for _, re := range ctx {
		found = append(found, re.FindAllString(text, -1)...)
	}

	out := found[:0]
	for _, f := range found {
		if f = strings.TrimSpace(f); len(f) > 10 {
			out = append(out, f)
		}
	}
	return out
}

// extractParties unions three independent heuristics: the optional
// statistical recognizer, the "between A and B" preamble pattern, and
// company-suffix plus formal-name patterns.  Party candidates use a
// tighter length bound than the generic cleaner.
func (e *Extractor) extractParties(text string) []string {
	var parties []string

	for _, ent := range e.ner.Entities(text) {
		if ent.Label == LabelPerson || ent.Label == LabelOrganization {
			parties = append(parties, strings.TrimSpace(ent.Text))
		}
	}

	for _, m := range e.tables.BetweenPattern.FindAllStringSubmatch(text, -1) {
		parties = append(parties, strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
	}

	parties = append(parties, matchAll(e.tables.CompanyPatterns, text)...)
	parties = append(parties, e.tables.FormalNamePattern.FindAllString(text, -1)...)

	out := parties[:0]
	for _, p := range parties {
		if len(p) > 2 && len(p) < 100 {
			out = append(out, p)
		}
	}
	return out
}

// cleanAndDeduplicate normalises whitespace, drops items outside the
// [3,200] length bounds, deduplicates case-insensitively keeping the
// first-seen casing, sorts, and caps the list.  Never returns nil.
func cleanAndDeduplicate(items []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, item := range items {
		item = whitespaceRun.ReplaceAllString(strings.TrimSpace(item), " ")
		if len(item) < 3 || len(item) > 200 {
			continue
		}
		key := strings.ToLower(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	if len(out) > maxEntitiesPerKind {
		out = out[:maxEntitiesPerKind]
	}
	return out
}

// Summarize computes the statistics view over an extraction result:
// totals, per-kind counts, presence flags, a coarse complexity score,
// and qualitative insight strings.
func Summarize(entities map[string][]string) legal.EntitySummary {
	total := 0
	breakdown := make(map[string]int, len(entities))
	for kind, values := range entities {
		total += len(values)
		breakdown[kind] = len(values)
	}

	s := legal.EntitySummary{
		TotalEntitiesFound: total,
		EntityBreakdown:    breakdown,
		HasParties:         len(entities["parties"]) > 0,
		HasFinancialTerms:  len(entities["amounts"]) > 0,
		HasDeadlines:       len(entities["dates"]) > 0,
		HasPenalties:       len(entities["penalties"]) > 0,
		ComplexityScore:    minInt(10, total/2),
		Insights:           []string{},
	}

	if s.HasParties {
		s.Insights = append(s.Insights, fmt.Sprintf("Document involves %d parties", len(entities["parties"])))
	}
	if s.HasFinancialTerms {
		s.Insights = append(s.Insights, fmt.Sprintf("Contains %d financial terms", len(entities["amounts"])))
	}
	if s.HasPenalties {
		s.Insights = append(s.Insights, "Document includes penalty clauses")
	}
	if len(entities["obligations"]) > 3 {
		s.Insights = append(s.Insights, "Complex obligation structure detected")
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
