// Package document implements the document workflow: upload, analysis,
// retrieval, re-analysis, comparison, question answering, and compliance
// checking.  It orchestrates the intelligence engine against persistence,
// object storage, the analysis cache, and the event stream.
package document

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/messaging/kafka"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/prometheus"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/analyzer"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/errors"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// Repository persists document records.
type Repository interface {
	Save(ctx context.Context, rec *legal.DocumentRecord) error
	Get(ctx context.Context, id string) (*legal.DocumentRecord, error)
	List(ctx context.Context) ([]legal.DocumentRecord, error)
	Delete(ctx context.Context, id string) error
}

// TextStore keeps raw document text for later re-analysis.
type TextStore interface {
	Put(ctx context.Context, id, text string) error
	Get(ctx context.Context, id string) (string, error)
	Remove(ctx context.Context, id string) error
}

// Cache is the subset of the analysis cache the service needs.  GetOrSet
// must collapse concurrent loads of the same key into one loader run.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func(ctx context.Context) (interface{}, error)) error
}

// EventPublisher emits analysis lifecycle events.
type EventPublisher interface {
	PublishDocumentAnalyzed(ctx context.Context, event kafka.DocumentAnalyzedEvent) error
}

// Options are the service tunables.
type Options struct {
	// MaxTextLength rejects oversized uploads before analysis.
	MaxTextLength int

	// DefaultJurisdiction is used when a compliance check names none.
	DefaultJurisdiction string

	// CacheTTL bounds how long a document record stays cached.
	CacheTTL time.Duration
}

// Service is the document application service.  Repository and analyzer
// are required; store, cache, events, and metrics are optional and
// nil-safe so small deployments can run on PostgreSQL alone.
type Service struct {
	analyzer *analyzer.Analyzer
	repo     Repository
	store    TextStore
	cache    Cache
	events   EventPublisher
	metrics  *prometheus.Metrics
	logger   logging.Logger
	opts     Options
}

// NewService builds the document service.
func NewService(
	eng *analyzer.Analyzer,
	repo Repository,
	store TextStore,
	cache Cache,
	events EventPublisher,
	metrics *prometheus.Metrics,
	log logging.Logger,
	opts Options,
) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = 1_000_000
	}
	if opts.DefaultJurisdiction == "" {
		opts.DefaultJurisdiction = "indian"
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}
	return &Service{
		analyzer: eng,
		repo:     repo,
		store:    store,
		cache:    cache,
		events:   events,
		metrics:  metrics,
		logger:   log.Named("document_service"),
		opts:     opts,
	}
}

func cacheKey(id string) string { return "document:" + id }

// Upload ingests one document: validates the text, runs the full
// analysis, persists record and text, and announces the result.  Event
// publishing and caching are best-effort; persistence is not.
func (s *Service) Upload(ctx context.Context, filename, text string) (*legal.DocumentRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.ErrCodeDocumentEmpty, "document text is empty")
	}
	if len(text) > s.opts.MaxTextLength {
		return nil, errors.New(errors.ErrCodeDocumentTooLarge, "document text exceeds size limit")
	}

	started := time.Now()
	analysis := s.analyzer.Analyze(text, filename)

	now := time.Now().UTC()
	rec := &legal.DocumentRecord{
		ID:           uuid.NewString(),
		Filename:     filename,
		UploadTime:   now,
		Text:         text,
		Analysis:     analysis,
		LastAnalyzed: now,
	}

	if s.store != nil {
		if err := s.store.Put(ctx, rec.ID, text); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.afterAnalysis(ctx, rec, time.Since(started))

	s.logger.Info("document uploaded",
		logging.String("id", rec.ID),
		logging.String("filename", filename),
		logging.Int("clauses", len(analysis.Clauses)),
		logging.String("overall_risk", string(analysis.OverallRisk)))
	return rec, nil
}

// Get loads a document record, preferring the cache.  The repository
// load runs as the cache loader, so concurrent requests for the same
// uncached document share a single database round trip.
func (s *Service) Get(ctx context.Context, id string) (*legal.DocumentRecord, error) {
	if s.cache == nil {
		return s.repo.Get(ctx, id)
	}

	loaded := false
	var rec legal.DocumentRecord
	err := s.cache.GetOrSet(ctx, cacheKey(id), &rec, s.opts.CacheTTL,
		func(ctx context.Context) (interface{}, error) {
			loaded = true
			return s.repo.Get(ctx, id)
		})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		// The flag stays false on a cache hit and on the concurrent
		// callers that piggyback on another caller's loader run.
		if loaded {
			s.metrics.CacheMisses.Inc()
		} else {
			s.metrics.CacheHits.Inc()
		}
	}
	return &rec, nil
}

// List returns all stored documents without their text bodies.
func (s *Service) List(ctx context.Context) ([]legal.DocumentRecord, error) {
	return s.repo.List(ctx)
}

// Delete removes a document everywhere it is kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.store != nil {
		if err := s.store.Remove(ctx, id); err != nil {
			s.logger.Warn("failed to remove stored text", logging.String("id", id), logging.Err(err))
		}
	}
	s.invalidate(ctx, id)
	return nil
}

// Reanalyze runs a fresh analysis over the stored text and replaces the
// document's analysis.  The previous result is discarded, never merged.
func (s *Service) Reanalyze(ctx context.Context, id string) (*legal.DocumentRecord, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	text := rec.Text
	if text == "" && s.store != nil {
		if text, err = s.store.Get(ctx, id); err != nil {
			return nil, err
		}
		rec.Text = text
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.ErrCodeDocumentEmpty, "stored document has no text").
			WithDetail("id: " + id)
	}

	started := time.Now()
	rec.Analysis = s.analyzer.Analyze(text, rec.Filename)
	rec.LastAnalyzed = time.Now().UTC()

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.afterAnalysis(ctx, rec, time.Since(started))
	return rec, nil
}

// Compare loads two documents and reports their differences.
func (s *Service) Compare(ctx context.Context, id1, id2 string) (legal.ComparisonReport, error) {
	doc1, err := s.Get(ctx, id1)
	if err != nil {
		return legal.ComparisonReport{}, err
	}
	doc2, err := s.Get(ctx, id2)
	if err != nil {
		return legal.ComparisonReport{}, err
	}
	return s.analyzer.Compare(doc1.Analysis, doc2.Analysis), nil
}

// Ask answers a free-text question about a stored document.
func (s *Service) Ask(ctx context.Context, id, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", errors.New(errors.ErrCodeQuestionEmpty, "question is empty")
	}
	rec, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.analyzer.Answer(rec.Analysis.Clauses, question), nil
}

// ExtractEntities returns the entities of a stored document together
// with their summary view.
func (s *Service) ExtractEntities(ctx context.Context, id string) (map[string][]string, legal.EntitySummary, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, legal.EntitySummary{}, err
	}
	entities := rec.Analysis.Entities
	return entities, s.analyzer.SummarizeEntities(entities), nil
}

// RiskAnalysis returns the stored risk assessment of a document.
func (s *Service) RiskAnalysis(ctx context.Context, id string) (legal.RiskAssessment, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return legal.RiskAssessment{}, err
	}
	return rec.Analysis.RiskAssessment, nil
}

// CheckCompliance verifies a stored document against a jurisdiction rule
// set, defaulting the jurisdiction when none is named.
func (s *Service) CheckCompliance(ctx context.Context, id, jurisdiction string) (legal.ComplianceReport, error) {
	if strings.TrimSpace(jurisdiction) == "" {
		jurisdiction = s.opts.DefaultJurisdiction
	}
	rec, err := s.Get(ctx, id)
	if err != nil {
		return legal.ComplianceReport{}, err
	}
	return s.analyzer.CheckCompliance(rec.Analysis.Clauses, jurisdiction), nil
}

// afterAnalysis handles the best-effort side effects of a completed
// analysis: cache refresh, metrics, and the analyzed event.
func (s *Service) afterAnalysis(ctx context.Context, rec *legal.DocumentRecord, elapsed time.Duration) {
	s.cacheRecord(ctx, rec)

	if s.metrics != nil {
		s.metrics.ObserveAnalysis(string(rec.Analysis.OverallRisk), len(rec.Analysis.Clauses), elapsed)
	}
	if s.events != nil {
		event := kafka.DocumentAnalyzedEvent{
			DocumentID:   rec.ID,
			Filename:     rec.Filename,
			DocumentType: rec.Analysis.DocumentType,
			OverallRisk:  rec.Analysis.OverallRisk,
			RiskScore:    rec.Analysis.RiskAssessment.RiskScore,
			ClauseCount:  len(rec.Analysis.Clauses),
			AnalyzedAt:   rec.LastAnalyzed,
		}
		if err := s.events.PublishDocumentAnalyzed(ctx, event); err != nil {
			s.logger.Warn("failed to publish analyzed event",
				logging.String("id", rec.ID), logging.Err(err))
		}
	}
}

func (s *Service) cacheRecord(ctx context.Context, rec *legal.DocumentRecord) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(rec.ID), rec, s.opts.CacheTTL); err != nil {
		s.logger.Warn("failed to cache document", logging.String("id", rec.ID), logging.Err(err))
	}
}

func (s *Service) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
		s.logger.Warn("failed to invalidate cache", logging.String("id", id), logging.Err(err))
	}
}
