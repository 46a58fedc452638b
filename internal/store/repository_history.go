package store

import (
	"context"
	"fmt"

	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/models"
)

// historyRepository is the PostgreSQL-backed implementation of
// [HistoryRepository]. The "history" table is append-only from the service's
// perspective; this repository exposes no update or delete path.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// SaveEntry inserts one analyze interaction. The created_at column is
// assigned by the database.
//
// Returns [ErrHistoryEntryNotSaved] when the INSERT affects zero rows, or a
// wrapped driver error on failure.
func (r *historyRepository) SaveEntry(ctx context.Context, entry models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, saveHistoryEntry, entry.Email, entry.Text, entry.Emotion, entry.Tip)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.SaveEntry").Msg("error: history entry insert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrHistoryEntryNotSaved
	}

	return nil
}

// FindByEmail returns all history entries recorded for email, narrowed by
// filter. The result carries no guaranteed order.
func (r *historyRepository) FindByEmail(ctx context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildHistoryQuery(email, filter)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.FindByEmail").Msg("error building history query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.FindByEmail").Msg("error executing history query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var entry models.HistoryEntry
		if err = rows.Scan(&entry.ID, &entry.Email, &entry.Text, &entry.Emotion, &entry.Tip, &entry.Timestamp); err != nil {
			log.Err(err).Str("func", "*historyRepository.FindByEmail").Msg("error scanning history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
