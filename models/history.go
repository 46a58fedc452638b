package models

import "time"

// HistoryEntry is a persisted record of one analyze interaction for a given
// user email. Entries are append-only: the service never mutates or deletes
// them.
type HistoryEntry struct {
	// ID is the internal storage identifier. It never leaves the store layer
	// and is stripped from all API responses.
	ID int64 `json:"-"`

	// Email is a loose foreign key on the users table; referential integrity
	// is not enforced.
	Email string `json:"email"`

	// Text is the raw input the user submitted for analysis.
	Text string `json:"text"`

	// Emotion is the classifier label detected for Text. It is always a
	// member of the label map codomain or the literal "neutral".
	Emotion string `json:"emotion"`

	// Tip is the supportive message generated for this interaction,
	// possibly one of the fixed fallback strings.
	Tip string `json:"tip"`

	// Timestamp is when the interaction was recorded.
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the HistoryEntry model.
func (h HistoryEntry) TableName() string {
	return "history"
}

// HistoryFilter narrows a history lookup. The zero value places no
// restrictions beyond the email match.
type HistoryFilter struct {
	// Emotion, when non-empty, restricts results to entries with this label.
	Emotion string

	// Limit, when non-zero, caps the number of returned rows.
	Limit uint64
}
