package repository

import (
	"context"

	"github.com/tlv300/whois-be/internal/model"
)

// ILookupRepository is the append-only lookup-history sink. An absent sink is
// modeled with the no-op implementation so callers never branch on whether
// logging is enabled.
type ILookupRepository interface {
	Create(ctx context.Context, entry *model.LookupEntry) error
	ListRecent(ctx context.Context, limit int) ([]*model.LookupEntry, error)
}
