package analyzer

import (
	"fmt"
	"strings"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// checkedProvisionNames documents which rule dimensions the compliance
// check covers.
var checkedProvisionNames = []string{"required_clauses", "restricted_terms", "mandatory_provisions"}

// CheckCompliance verifies an analysed document against a jurisdiction
// rule set: every required clause category must be present and no
// restricted term may appear.  Unknown jurisdictions fall back to the
// default rule set while the report still names the requested
// jurisdiction.
func (a *Analyzer) CheckCompliance(clauses []legal.ClauseRecord, jurisdiction string) legal.ComplianceReport {
	rules, ok := a.tables.Jurisdictions[strings.ToLower(jurisdiction)]
	if !ok {
		a.log.Warn("unknown jurisdiction, using default rule set",
			logging.String("jurisdiction", jurisdiction))
		rules = a.tables.Jurisdictions[a.tables.DefaultJurisdiction]
	}

	issues := []string{}
	recommendations := []string{}

	present := map[legal.Category]bool{}
	for _, cl := range clauses {
		present[cl.Category] = true
	}
	for _, required := range rules.RequiredClauses {
		if !present[required] {
			label := strings.ReplaceAll(string(required), "_", " ")
			issues = append(issues, fmt.Sprintf("Missing required %s clause", label))
			recommendations = append(recommendations, fmt.Sprintf("Add a %s clause", label))
		}
	}

	var sb strings.Builder
	for _, cl := range clauses {
		sb.WriteString(cl.Content)
		sb.WriteByte(' ')
	}
	documentText := strings.ToLower(sb.String())
	for _, restricted := range rules.RestrictedTerms {
		if strings.Contains(documentText, strings.ToLower(restricted)) {
			issues = append(issues, fmt.Sprintf("Contains potentially problematic term: '%s'", restricted))
			recommendations = append(recommendations, fmt.Sprintf("Review and possibly remove '%s' clause", restricted))
		}
	}

	totalChecks := len(rules.RequiredClauses) + len(rules.RestrictedTerms)
	score := 0.0
	if totalChecks > 0 {
		score = float64(totalChecks-len(issues)) / float64(totalChecks) * 100
		if score < 0 {
			score = 0
		}
	}

	level := "Low"
	switch {
	case score >= 80:
		level = "High"
	case score >= 60:
		level = "Medium"
	}

	return legal.ComplianceReport{
		Jurisdiction:      jurisdiction,
		ComplianceLevel:   level,
		ComplianceScore:   round1(score),
		Issues:            issues,
		Recommendations:   recommendations,
		CheckedProvisions: checkedProvisionNames,
	}
}
