// Package repositories implements persistence for documents and their
// analyses on top of the pgx connection pool.
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/errors"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// DocumentRepository stores documents and their latest analysis.  The
// analysis is persisted as a JSONB column; the raw text lives in object
// storage and only travels through here for convenience of small
// deployments that skip MinIO.
type DocumentRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewDocumentRepository builds a DocumentRepository.
func NewDocumentRepository(pool *pgxpool.Pool, log logging.Logger) *DocumentRepository {
	return &DocumentRepository{pool: pool, logger: log.Named("document_repo")}
}

// Save upserts a document record together with its analysis.
func (r *DocumentRepository) Save(ctx context.Context, rec *legal.DocumentRecord) error {
	analysis, err := json.Marshal(rec.Analysis)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode analysis")
	}

	const q = `
		INSERT INTO documents (id, filename, upload_time, text, analysis, last_analyzed)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET analysis = EXCLUDED.analysis,
		    last_analyzed = EXCLUDED.last_analyzed`

	if _, err := r.pool.Exec(ctx, q,
		rec.ID, rec.Filename, rec.UploadTime, rec.Text, analysis, rec.LastAnalyzed); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to save document")
	}
	return nil
}

// Get loads one document with its analysis.
func (r *DocumentRepository) Get(ctx context.Context, id string) (*legal.DocumentRecord, error) {
	const q = `
		SELECT id, filename, upload_time, text, analysis, last_analyzed
		FROM documents WHERE id = $1`

	var (
		rec      legal.DocumentRecord
		analysis []byte
	)
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&rec.ID, &rec.Filename, &rec.UploadTime, &rec.Text, &analysis, &rec.LastAnalyzed)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New(errors.ErrCodeDocumentNotFound, "document not found").
				WithDetail("id: " + id)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load document")
	}
	if err := json.Unmarshal(analysis, &rec.Analysis); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to decode analysis")
	}
	return &rec, nil
}

// List returns all stored documents, newest upload first, without their
// text bodies.
func (r *DocumentRepository) List(ctx context.Context) ([]legal.DocumentRecord, error) {
	const q = `
		SELECT id, filename, upload_time, analysis, last_analyzed
		FROM documents ORDER BY upload_time DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list documents")
	}
	defer rows.Close()

	out := []legal.DocumentRecord{}
	for rows.Next() {
		var (
			rec      legal.DocumentRecord
			analysis []byte
		)
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.UploadTime, &analysis, &rec.LastAnalyzed); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan document row")
		}
		if err := json.Unmarshal(analysis, &rec.Analysis); err != nil {
			r.logger.Warn("skipping document with undecodable analysis",
				logging.String("id", rec.ID), logging.Err(err))
			continue
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate documents")
	}
	return out, nil
}

// Delete removes a document.  Deleting an unknown id reports not-found.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete document")
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.ErrCodeDocumentNotFound, "document not found").
			WithDetail("id: " + id)
	}
	return nil
}
