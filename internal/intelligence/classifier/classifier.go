// Package classifier assigns a clause-type category to a text fragment
// using ordered pattern matching over a closed taxonomy.
package classifier

import (
	"strings"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// Classifier labels clause fragments.  It is stateless apart from the
// shared pattern tables and safe for concurrent use.
type Classifier struct {
	tables *patterns.Tables
}

// New builds a Classifier over the given pattern tables.
func New(tables *patterns.Tables) *Classifier {
	return &Classifier{tables: tables}
}

// Classify returns the category of the fragment.  Categories are tried in
// table order and the first with any matching pattern wins, so a clause
// mentioning both termination and payment is labelled termination.  When
// no category pattern matches, modal language decides: obligation words
// ("shall", "must") beat permission words ("may", "can"), and a fragment
// with neither is labelled general.
func (c *Classifier) Classify(fragment string) legal.Category {
	lower := strings.ToLower(fragment)

	for _, cat := range c.tables.ClauseCategories {
		for _, p := range cat.Patterns {
			if p.MatchString(lower) {
				return cat.Category
			}
		}
	}

	for _, w := range c.tables.ObligationWords {
		if strings.Contains(lower, w) {
			return legal.CategoryObligation
		}
	}
	for _, w := range c.tables.PermissionWords {
		if strings.Contains(lower, w) {
			return legal.CategoryRight
		}
	}
	return legal.CategoryGeneral
}

// Title renders a category as its human-readable clause title,
// e.g. "dispute_resolution" becomes "Dispute Resolution".
func Title(cat legal.Category) string {
	words := strings.Split(string(cat), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
