package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/wellmind/wellmind/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	saveHistoryEntry = `INSERT INTO history (email, text, emotion, tip)
    VALUES ($1, $2, $3, $4);`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildHistoryQuery assembles the history lookup for one email, applying the
// optional emotion and limit restrictions from filter. No explicit ordering
// is imposed; the caller treats the result as an unordered set.
func buildHistoryQuery(email string, filter models.HistoryFilter) (string, []any, error) {
	query := psql.
		Select("id", "email", "text", "emotion", "tip", "created_at").
		From(models.HistoryEntry{}.TableName()).
		Where(sq.Eq{"email": email})

	if filter.Emotion != "" {
		query = query.Where(sq.Eq{"emotion": filter.Emotion})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}
