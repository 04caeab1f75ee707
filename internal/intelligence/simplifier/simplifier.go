// Package simplifier renders clauses as plain-language explanations built
// from per-category templates plus detail fragments mined from the text.
package simplifier

import (
	"fmt"
	"strings"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// Simplifier produces the plain-language view of a clause.  Stateless
// apart from the shared pattern tables; safe for concurrent use.
type Simplifier struct {
	tables *patterns.Tables
}

// New builds a Simplifier over the given pattern tables.
func New(tables *patterns.Tables) *Simplifier {
	return &Simplifier{tables: tables}
}

// Simplify returns the explanation for a clause: the category template
// followed by optional detail sentences.  The detail checks are
// independent and applied in fixed order, each firing only when its
// textual trigger is present.  Never returns an empty string.
func (s *Simplifier) Simplify(fragment string, category legal.Category) string {
	explanation, ok := s.tables.SimplificationTemplates[category]
	if !ok {
		explanation = patterns.DefaultSimplification
	}

	lower := strings.ToLower(fragment)

	if strings.Contains(lower, "termination") {
		if strings.Contains(lower, "notice") {
			if m := s.tables.NoticeDaysPattern.FindStringSubmatch(lower); m != nil {
				explanation += fmt.Sprintf(" You need to give %s days notice.", m[1])
			}
		}
		if strings.Contains(lower, "cause") && strings.Contains(lower, "without") {
			explanation += " Either party can terminate without giving a specific reason."
		}
	} else if strings.Contains(lower, "payment") {
		// the amount is matched against the original casing so currency
		// symbols survive verbatim
		if m := s.tables.DollarAmountPattern.FindString(fragment); m != "" {
			explanation += fmt.Sprintf(" The amount involved is %s.", m)
		}
		if strings.Contains(lower, "late") && strings.Contains(lower, "fee") {
			explanation += " There are penalties for late payment."
		}
	}

	return explanation
}
