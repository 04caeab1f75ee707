// Package segmenter splits raw contract text into candidate clause
// fragments using structural boundary patterns, with a paragraph fallback
// for unstructured documents.
package segmenter

import (
	"strings"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
)

// Options are the segmentation tunables.
type Options struct {
	// MaxClauses caps the fragments returned from structured segmentation.
	MaxClauses int

	// MinClauseLength is the exclusive lower bound on fragment length;
	// fragments of exactly this length are discarded as noise.
	MinClauseLength int

	// FallbackMaxClauses caps the fragments from the paragraph fallback.
	FallbackMaxClauses int
}

// DefaultOptions returns the standard segmentation limits.
func DefaultOptions() Options {
	return Options{
		MaxClauses:         20,
		MinClauseLength:    100,
		FallbackMaxClauses: 10,
	}
}

// Segmenter performs the progressive structural split.  It is stateless
// apart from the shared pattern tables and safe for concurrent use.
type Segmenter struct {
	tables *patterns.Tables
	opts   Options
}

// New builds a Segmenter over the given pattern tables.
func New(tables *patterns.Tables, opts Options) *Segmenter {
	return &Segmenter{tables: tables, opts: opts}
}

// Segment splits text into clause fragments.  The separator patterns are
// applied progressively: each pass re-splits every fragment produced by
// the previous pass, so a document mixing numbered clauses with SECTION
// headers is cut at both kinds of boundary.  After all passes, fragments
// at or below the minimum length are discarded and the result is capped.
//
// When no pass finds a boundary, or the filtered result is empty, the
// text is split on blank lines instead with a tighter cap.  Fragment
// order always follows document order and the result is never nil.
func (s *Segmenter) Segment(text string) []string {
	sections := []string{text}
	boundaryFound := false

	for _, sep := range s.tables.SeparatorPatterns {
		next := make([]string, 0, len(sections))
		for _, sec := range sections {
			parts := sep.Split(sec, -1)
			if len(parts) > 1 {
				boundaryFound = true
			}
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					next = append(next, p)
				}
			}
		}
		sections = next
	}

	fragments := []string{}
	for _, sec := range sections {
		if len(sec) > s.opts.MinClauseLength {
			fragments = append(fragments, sec)
		}
	}

	if !boundaryFound || len(fragments) == 0 {
		return s.paragraphFallback(text)
	}

	if len(fragments) > s.opts.MaxClauses {
		fragments = fragments[:s.opts.MaxClauses]
	}
	return fragments
}

func (s *Segmenter) paragraphFallback(text string) []string {
	fragments := []string{}
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); len(p) > s.opts.MinClauseLength {
			fragments = append(fragments, p)
		}
		if len(fragments) == s.opts.FallbackMaxClauses {
			break
		}
	}
	return fragments
}
