package domain

import "time"

// HistoryEntry is the persisted record of one completed session.
// History keeps the 50 most recent entries, newest first.
type HistoryEntry struct {
	ID        string
	Date      time.Time
	Target    Target
	Answered  int
	Skipped   int
	Total     int
	Favorites []string
	Minutes   int
}

// FavoritesKey identifies a bucket in the favorites ledger: one
// audience kind on one calendar day.
type FavoritesKey struct {
	Target Target
	Day    string // YYYY-MM-DD
}

// FavoritesKeyFor builds the ledger key for a target on the given day.
func FavoritesKeyFor(target Target, at time.Time) FavoritesKey {
	return FavoritesKey{Target: target, Day: at.Format("2006-01-02")}
}
