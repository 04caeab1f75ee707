// Package kafka publishes document lifecycle events for downstream
// consumers (search indexers, notification pipelines).
package kafka

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/config"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/errors"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// TopicDocumentAnalyzed carries one event per completed analysis.
const TopicDocumentAnalyzed = "document.analyzed"

// DocumentAnalyzedEvent is the wire payload of an analysis completion.
type DocumentAnalyzedEvent struct {
	DocumentID   string          `json:"document_id"`
	Filename     string          `json:"filename"`
	DocumentType string          `json:"document_type"`
	OverallRisk  legal.RiskLevel `json:"overall_risk"`
	RiskScore    float64         `json:"risk_score"`
	ClauseCount  int             `json:"clause_count"`
	AnalyzedAt   time.Time       `json:"analyzed_at"`
}

// Producer writes events to Kafka.  Publishing is best-effort from the
// caller's point of view: the service layer logs failures and proceeds,
// so a broker outage never blocks an analysis response.
type Producer struct {
	writer *kafkago.Writer
	logger logging.Logger
}

// NewProducer builds a Producer for the document.analyzed topic.
func NewProducer(cfg config.KafkaConfig, log logging.Logger) *Producer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        TopicDocumentAnalyzed,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafkago.RequireOne,
	}
	return &Producer{writer: writer, logger: log.Named("kafka_producer")}
}

// PublishDocumentAnalyzed emits one analysis-completed event, keyed by
// document id so per-document ordering is preserved.
func (p *Producer) PublishDocumentAnalyzed(ctx context.Context, event DocumentAnalyzedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode event")
	}

	msg := kafkago.Message{
		Key:   []byte(event.DocumentID),
		Value: payload,
		Time:  time.Now().UTC(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, errors.ErrCodeMessagingError, "failed to publish document.analyzed event")
	}

	p.logger.Debug("published document.analyzed event",
		logging.String("document_id", event.DocumentID),
		logging.String("overall_risk", string(event.OverallRisk)))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error { return p.writer.Close() }
