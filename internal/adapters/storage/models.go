package storage

import "time"

// FavoriteModel is the GORM model for the favorites ledger. The
// unique index over (target, day, text) enforces the dedup contract.
type FavoriteModel struct {
	CreatedAt time.Time
	Day       string `gorm:"not null;uniqueIndex:idx_fav_key_text;index:idx_fav_day"`
	ID        uint   `gorm:"primaryKey"`
	Target    string `gorm:"not null;uniqueIndex:idx_fav_key_text"`
	Text      string `gorm:"not null;uniqueIndex:idx_fav_key_text"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (FavoriteModel) TableName() string { return "favorites" }

// HistoryModel is the GORM model for completed-session history.
// Favorites are stored as a JSON-encoded string array.
type HistoryModel struct {
	Answered  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	Date      time.Time `gorm:"not null;index:idx_history_date"`
	Favorites string    `gorm:"not null;default:'[]'"`
	ID        string    `gorm:"primaryKey"`
	Minutes   int       `gorm:"not null;default:0"`
	Skipped   int       `gorm:"not null;default:0"`
	Target    string    `gorm:"not null"`
	Total     int       `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (HistoryModel) TableName() string { return "history" }
