package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blizhe/internal/domain"
	"blizhe/internal/logging"
	"blizhe/internal/ports"
)

// historyCap is the maximum number of history entries retained;
// appending beyond it drops the oldest entries.
const historyCap = 50

// SQLiteStore implements ports.Store using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.Store = (*SQLiteStore)(nil)

// gormLogger wraps the blizhe logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("BLIZHE_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore creates a new SQLiteStore
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&FavoriteModel{}, &HistoryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStoreForPath creates a new SQLiteStore for a specific BLIZHE_HOME path
func NewSQLiteStoreForPath(blizheHomePath string) (*SQLiteStore, error) {
	dbPath := filepath.Join(blizheHomePath, "blizhe.db")
	return NewSQLiteStore(dbPath)
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Upsert implements FavoritesLedger.Upsert
func (s *SQLiteStore) Upsert(ctx context.Context, key domain.FavoritesKey, text string) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing FavoriteModel
			err := tx.Where("target = ? AND day = ? AND text = ?",
				string(key.Target), key.Day, text).First(&existing).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&FavoriteModel{
					Target: string(key.Target),
					Day:    key.Day,
					Text:   text,
				}).Error
			}
			// Already recorded: the ledger is append-only by text.
			return err
		})
	}, 3)
}

// ReadAll implements FavoritesLedger.ReadAll
func (s *SQLiteStore) ReadAll(ctx context.Context) (map[domain.FavoritesKey][]string, error) {
	var rows []FavoriteModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Order("created_at ASC, id ASC").
			Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make(map[domain.FavoritesKey][]string)
	for _, row := range rows {
		key := domain.FavoritesKey{Target: domain.Target(row.Target), Day: row.Day}
		result[key] = append(result[key], row.Text)
	}
	return result, nil
}

// ClearFavorites implements FavoritesLedger.ClearFavorites
func (s *SQLiteStore) ClearFavorites(ctx context.Context) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Exec("DELETE FROM favorites").Error
	}, 3)
}

// Append implements HistoryStore.Append. New entries are inserted and
// everything beyond the newest historyCap entries is dropped.
func (s *SQLiteStore) Append(ctx context.Context, entry domain.HistoryEntry) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			model := domainToHistoryModel(entry)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create history entry: %w", err)
			}

			return tx.Exec(`
				DELETE FROM history WHERE id NOT IN (
					SELECT id FROM history ORDER BY date DESC, created_at DESC LIMIT ?
				)
			`, historyCap).Error
		})
	}, 3)
}

// List implements HistoryStore.List, newest first. A non-positive
// limit returns everything retained.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	var rows []HistoryModel

	err := withRetry(func() error {
		query := s.db.WithContext(ctx).Order("date DESC, created_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.HistoryEntry, len(rows))
	for i, row := range rows {
		result[i] = historyModelToDomain(row)
	}

	// Rows sharing a timestamp keep insertion order
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	return result, nil
}

// ClearHistory implements HistoryStore.ClearHistory
func (s *SQLiteStore) ClearHistory(ctx context.Context) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Exec("DELETE FROM history").Error
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
