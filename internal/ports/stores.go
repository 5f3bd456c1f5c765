package ports

import (
	"context"

	"blizhe/internal/domain"
)

// FavoritesLedger is the cross-session record of favorited question
// texts, keyed by audience kind and calendar day. Upsert deduplicates
// by exact text within a key; un-favoriting never removes a text.
type FavoritesLedger interface {
	Upsert(ctx context.Context, key domain.FavoritesKey, text string) error
	ReadAll(ctx context.Context) (map[domain.FavoritesKey][]string, error)
	ClearFavorites(ctx context.Context) error
}

// HistoryStore persists completed-session records, capped at the 50
// most recent entries (oldest dropped first).
type HistoryStore interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	ClearHistory(ctx context.Context) error
}

// Store is the composite persistence interface.
type Store interface {
	FavoritesLedger
	HistoryStore
	Close() error
}
