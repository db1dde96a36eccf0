package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

// PostgresBackend 把整个文档存成 documents 表中的一行 JSONB
type PostgresBackend struct {
	dbpool *sql.DB
	name   string
}

func NewPostgresBackend(dbpool *sql.DB, name string) *PostgresBackend {
	return &PostgresBackend{
		dbpool: dbpool,
		name:   name,
	}
}

func (b *PostgresBackend) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			name       TEXT PRIMARY KEY,
			body       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := b.dbpool.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (b *PostgresBackend) Load(ctx context.Context) (*domain.Document, error) {
	query := `
		SELECT body FROM documents WHERE name = $1
	`

	var body []byte
	if err := b.dbpool.QueryRowContext(ctx, query, b.name).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentMissing, b.name)
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return doc, nil
}

func (b *PostgresBackend) Save(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (name, body)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err := b.dbpool.ExecContext(ctx, query, b.name, string(body)); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}
