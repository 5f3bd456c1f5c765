package storage

import (
	"encoding/json"

	"blizhe/internal/domain"
	"blizhe/internal/logging"
)

// historyModelToDomain converts a GORM history row to the domain entry.
func historyModelToDomain(m HistoryModel) domain.HistoryEntry {
	var favorites []string
	if err := json.Unmarshal([]byte(m.Favorites), &favorites); err != nil {
		// Corrupt rows degrade to an empty favorites list, never fail.
		logging.Logger.Warn("Corrupt favorites in history row",
			"id", m.ID,
			"error", err)
		favorites = nil
	}

	return domain.HistoryEntry{
		ID:        m.ID,
		Date:      m.Date,
		Target:    domain.Target(m.Target),
		Answered:  m.Answered,
		Skipped:   m.Skipped,
		Total:     m.Total,
		Favorites: favorites,
		Minutes:   m.Minutes,
	}
}

// domainToHistoryModel converts a domain entry to its GORM row.
func domainToHistoryModel(e domain.HistoryEntry) HistoryModel {
	favorites := e.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	encoded, err := json.Marshal(favorites)
	if err != nil {
		encoded = []byte("[]")
	}

	return HistoryModel{
		ID:        e.ID,
		Date:      e.Date,
		Target:    string(e.Target),
		Answered:  e.Answered,
		Skipped:   e.Skipped,
		Total:     e.Total,
		Favorites: string(encoded),
		Minutes:   e.Minutes,
	}
}
