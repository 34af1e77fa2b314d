package repository

import (
	"context"

	"github.com/tlv300/whois-be/internal/model"
)

// noopLookupRepository stands in for the sink when no database is configured.
type noopLookupRepository struct{}

func NewNoopLookupRepository() ILookupRepository {
	return noopLookupRepository{}
}

func (noopLookupRepository) Create(ctx context.Context, entry *model.LookupEntry) error {
	return nil
}

func (noopLookupRepository) ListRecent(ctx context.Context, limit int) ([]*model.LookupEntry, error) {
	return nil, nil
}
