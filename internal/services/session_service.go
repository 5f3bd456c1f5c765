package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"blizhe/internal/domain"
	"blizhe/internal/logging"
	"blizhe/internal/ports"
)

// SessionService glues the session engine to the persistence layer:
// it writes favorited texts to the ledger and completed sessions to
// history. Persistence failures degrade, they never stop a session.
type SessionService struct {
	store ports.Store
	now   func() time.Time
}

// NewSessionService creates a new SessionService
func NewSessionService(store ports.Store) *SessionService {
	return &SessionService{store: store, now: time.Now}
}

// RecordFavorite upserts a favorited question text into the ledger
// under (target, today). Duplicate texts within a key are ignored.
func (s *SessionService) RecordFavorite(ctx context.Context, target domain.Target, text string) error {
	key := domain.FavoritesKeyFor(target, s.now())
	if err := s.store.Upsert(ctx, key, text); err != nil {
		return fmt.Errorf("failed to record favorite: %w", err)
	}
	return nil
}

// SaveCompleted appends a completed session to history.
func (s *SessionService) SaveCompleted(ctx context.Context, cfg domain.SessionConfig, results domain.Results, favorites []string) (domain.HistoryEntry, error) {
	entry := domain.HistoryEntry{
		ID:        uuid.New().String(),
		Date:      s.now(),
		Target:    cfg.Target,
		Answered:  results.Answered,
		Skipped:   results.Skipped,
		Total:     results.Total,
		Favorites: favorites,
		Minutes:   results.Minutes,
	}

	if err := s.store.Append(ctx, entry); err != nil {
		return entry, fmt.Errorf("failed to save session to history: %w", err)
	}

	logging.Logger.Info("Session saved to history",
		"id", entry.ID,
		"target", entry.Target,
		"answered", entry.Answered,
		"total", entry.Total)

	return entry, nil
}

// History returns the most recent completed sessions, newest first.
func (s *SessionService) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	return s.store.List(ctx, limit)
}

// AllFavorites returns the deduplicated union of every ledger text,
// oldest first.
func (s *SessionService) AllFavorites(ctx context.Context) ([]string, error) {
	byKey, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]domain.FavoritesKey, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Target < keys[j].Target
	})

	seen := make(map[string]bool)
	var texts []string
	for _, key := range keys {
		for _, text := range byKey[key] {
			if !seen[text] {
				seen[text] = true
				texts = append(texts, text)
			}
		}
	}
	return texts, nil
}

// ClearData wipes history and the favorites ledger.
func (s *SessionService) ClearData(ctx context.Context) error {
	if err := s.store.ClearHistory(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	if err := s.store.ClearFavorites(ctx); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	return nil
}
