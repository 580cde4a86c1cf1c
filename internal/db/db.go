// Package db provides PostgreSQL storage for imported CV documents.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sucreistaken/cv-importer/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the imports table if it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS imports (
			id UUID PRIMARY KEY,
			filename TEXT NOT NULL,
			document JSONB NOT NULL,
			likely_empty BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// ImportRecord represents a stored import
type ImportRecord struct {
	ID          uuid.UUID         `json:"id"`
	Filename    string            `json:"filename"`
	Document    *types.CVDocument `json:"document,omitempty"`
	LikelyEmpty bool              `json:"likely_empty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ImportSummary is a lightweight view of an import for listing
type ImportSummary struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	LikelyEmpty bool      `json:"likely_empty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveImport stores an imported document and returns its ID
func (db *DB) SaveImport(ctx context.Context, filename string, doc *types.CVDocument) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO imports (id, filename, document, likely_empty)
		 VALUES ($1, $2, $3, $4)`,
		id, filename, jsonBytes, doc.IsEmpty(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save import: %w", err)
	}
	return id, nil
}

// GetImport retrieves a stored import by ID; returns nil when not found
func (db *DB) GetImport(ctx context.Context, importID uuid.UUID) (*ImportRecord, error) {
	var rec ImportRecord
	var docBytes []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, document, likely_empty, created_at
		 FROM imports WHERE id = $1`,
		importID,
	).Scan(&rec.ID, &rec.Filename, &docBytes, &rec.LikelyEmpty, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get import: %w", err)
	}

	var doc types.CVDocument
	if err := json.Unmarshal(docBytes, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	rec.Document = &doc
	return &rec, nil
}

// ImportFilters holds optional filters for listing imports
type ImportFilters struct {
	Filename    string
	LikelyEmpty *bool
	Limit       int
}

// ListImports retrieves recent imports with optional filters
func (db *DB) ListImports(ctx context.Context, filters ImportFilters) ([]ImportSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, filename, likely_empty, created_at
		FROM imports WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Filename != "" {
		query += fmt.Sprintf(" AND filename ILIKE $%d", argNum)
		args = append(args, "%"+filters.Filename+"%")
		argNum++
	}
	if filters.LikelyEmpty != nil {
		query += fmt.Sprintf(" AND likely_empty = $%d", argNum)
		args = append(args, *filters.LikelyEmpty)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	var imports []ImportSummary
	for rows.Next() {
		var s ImportSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.LikelyEmpty, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		imports = append(imports, s)
	}
	return imports, nil
}

// DeleteImport deletes a stored import
func (db *DB) DeleteImport(ctx context.Context, importID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM imports WHERE id = $1`, importID)
	if err != nil {
		return fmt.Errorf("failed to delete import: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("import not found: %s", importID)
	}
	return nil
}
