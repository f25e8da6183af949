package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recordRepoPG struct{ pool *pgxpool.Pool }

// NewRecordRepoPG returns a RecordRepository backed by the
// bridge_documents table, one JSONB document per row.
func NewRecordRepoPG(pool *pgxpool.Pool) RecordRepository {
	return &recordRepoPG{pool: pool}
}

func (r *recordRepoPG) Insert(ctx context.Context, bundle *RecordBundle, collection string) error {
	doc, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal record bundle: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO bridge_documents (collection, record_id, doc)
		VALUES ($1, $2, $3)`,
		collection, bundle.RecordID, doc)
	if err != nil {
		return fmt.Errorf("insert record bundle: %w", err)
	}
	return nil
}

func (r *recordRepoPG) FindByRecordID(ctx context.Context, recordID, collection string) (*RecordBundle, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `
		SELECT doc FROM bridge_documents
		WHERE collection = $1 AND record_id = $2`,
		collection, recordID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find record bundle: %w", err)
	}

	var bundle RecordBundle
	if err := json.Unmarshal(doc, &bundle); err != nil {
		return nil, fmt.Errorf("unmarshal record bundle: %w", err)
	}
	return &bundle, nil
}

func (r *recordRepoPG) InsertRaw(ctx context.Context, recordID string, doc json.RawMessage, collection string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bridge_documents (collection, record_id, doc)
		VALUES ($1, $2, $3)`,
		collection, recordID, []byte(doc))
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}
