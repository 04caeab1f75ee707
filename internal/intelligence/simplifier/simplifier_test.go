package simplifier

import (
	"strings"
	"testing"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

func TestSimplifyTemplates(t *testing.T) {
	s := New(patterns.Default())

	got := s.Simplify("Recipient shall keep disclosed material secret.", legal.CategoryConfidentiality)
	if got != "This requires keeping shared information private." {
		t.Fatalf("got %q", got)
	}

	got = s.Simplify("Executed in two counterparts.", legal.CategoryGeneral)
	if got != patterns.DefaultSimplification {
		t.Fatalf("unknown category should use the default template, got %q", got)
	}
}

func TestSimplifyTerminationNoticeDetail(t *testing.T) {
	s := New(patterns.Default())

	clause := "Termination of this agreement requires 60 days notice in writing."
	got := s.Simplify(clause, legal.CategoryTermination)

	if !strings.HasPrefix(got, "This explains how either party can end the contract.") {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(got, "You need to give 60 days notice.") {
		t.Fatalf("missing notice detail: %q", got)
	}
}

func TestSimplifyTerminationWithoutCauseDetail(t *testing.T) {
	s := New(patterns.Default())

	clause := "Termination may occur without cause by either party."
	got := s.Simplify(clause, legal.CategoryTermination)

	if !strings.Contains(got, "without giving a specific reason") {
		t.Fatalf("missing without-cause detail: %q", got)
	}
}

func TestSimplifyPaymentDetails(t *testing.T) {
	s := New(patterns.Default())

	clause := "Payment of $5,000 is due on the first of each month; late payments incur a fee."
	got := s.Simplify(clause, legal.CategoryPayment)

	if !strings.Contains(got, "The amount involved is $5,000.") {
		t.Fatalf("missing amount detail: %q", got)
	}
	if !strings.Contains(got, "penalties for late payment") {
		t.Fatalf("missing late-fee detail: %q", got)
	}
}

func TestSimplifyDetailsAreTriggerGated(t *testing.T) {
	s := New(patterns.Default())

	// mentions payment but carries no amount and no late fee
	clause := "Payment terms are set out in the statement of work."
	got := s.Simplify(clause, legal.CategoryPayment)
	if got != "This covers how much you pay and when payments are due." {
		t.Fatalf("no detail should fire: %q", got)
	}
}
