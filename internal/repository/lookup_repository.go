package repository

import (
	"context"
	"database/sql"

	"github.com/tlv300/whois-be/internal/model"
)

// lookupRepository is the Postgres implementation of ILookupRepository.
type lookupRepository struct {
	db *sql.DB
}

// NewLookupRepository is the constructor for lookupRepository.
func NewLookupRepository(db *sql.DB) ILookupRepository {
	return &lookupRepository{db: db}
}

// Create appends one lookup record. created_at is assigned by the database.
func (r *lookupRepository) Create(ctx context.Context, entry *model.LookupEntry) error {
	query := `
		INSERT INTO whois_lookups (domain, info_type, http_status, success, registrar)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		entry.Domain,
		entry.InfoType,
		entry.HTTPStatus,
		entry.Success,
		entry.Registrar,
	)

	return err
}

// ListRecent retrieves the most recent lookups, newest first.
func (r *lookupRepository) ListRecent(ctx context.Context, limit int) ([]*model.LookupEntry, error) {
	query := `
		SELECT id, domain, info_type, http_status, success, registrar, created_at
		FROM whois_lookups
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.LookupEntry
	for rows.Next() {
		var entry model.LookupEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Domain,
			&entry.InfoType,
			&entry.HTTPStatus,
			&entry.Success,
			&entry.Registrar,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
