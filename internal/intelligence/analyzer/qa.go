package analyzer

import (
	"strings"

	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// Fixed answer strings of the question-answering path.
const (
	answerNotFound = "I couldn't find specific information about your question in this document. " +
		"You might want to consult with a legal professional for clarification."
	answerNeedsContext = "The document contains relevant clauses, but I need more context to provide " +
		"a specific answer. Please consider consulting with a legal professional."
	answerPrefix       = "Based on the document analysis: "
	answerRiskWarning  = " Please note that some related clauses have been flagged as high-risk."
	maxAnswerClauses   = 3
)

// Answer responds to a free-text question about an analysed document.
// The question is keyword-matched against the synonym table to pick the
// relevant clause vocabulary; clauses whose content or category mentions
// any selected synonym contribute their simplified explanations, up to
// three.  A high-risk warning is appended when any contributing clause
// is flagged high.
func (a *Analyzer) Answer(clauses []legal.ClauseRecord, question string) string {
	questionLower := strings.ToLower(question)

	var relevantTerms []string
	for _, synonyms := range synonymGroups(a.tables.QuestionKeywords) {
		for _, syn := range synonyms {
			if strings.Contains(questionLower, syn) {
				relevantTerms = append(relevantTerms, synonyms...)
				break
			}
		}
	}

	var relevant []legal.ClauseRecord
	for _, cl := range clauses {
		content := strings.ToLower(cl.Content)
		category := string(cl.Category)
		for _, term := range relevantTerms {
			if strings.Contains(content, term) || strings.Contains(category, term) {
				relevant = append(relevant, cl)
				break
			}
		}
	}

	if len(relevant) == 0 {
		return answerNotFound
	}

	var parts []string
	for _, cl := range relevant {
		if len(parts) == maxAnswerClauses {
			break
		}
		if cl.Simplified != "" {
			parts = append(parts, cl.Simplified)
		}
	}
	if len(parts) == 0 {
		return answerNeedsContext
	}

	answer := answerPrefix + strings.Join(parts, " ")
	for _, cl := range relevant {
		if cl.RiskLevel == legal.RiskHigh {
			answer += answerRiskWarning
			break
		}
	}
	return answer
}

// synonymGroups returns the synonym lists in a stable keyword order so
// repeated questions always assemble the same term set.
func synonymGroups(table map[string][]string) [][]string {
	order := []string{"terminate", "pay", "liability", "confidential", "breach", "obligation"}
	out := make([][]string, 0, len(table))
	for _, k := range order {
		if syns, ok := table[k]; ok {
			out = append(out, syns)
		}
	}
	return out
}
