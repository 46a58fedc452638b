package store

import (
	"context"

	"github.com/wellmind/wellmind/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// HistoryRepository persists and looks up analyze interactions. Entries are
// append-only; there is no update or delete operation.
type HistoryRepository interface {
	SaveEntry(ctx context.Context, entry models.HistoryEntry) error
	FindByEmail(ctx context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error)
}
