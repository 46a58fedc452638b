package service

import (
	"context"

	"github.com/wellmind/wellmind/models"
)

// AuthService handles user registration, credential verification, and JWT
// session-token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AnalyzerService classifies submitted text, pairs it with a supportive tip,
// and serves history lookups.
type AnalyzerService interface {
	Analyze(ctx context.Context, email string, text string) (models.AnalyzeResponse, error)
	History(ctx context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error)
}

// Classifier returns the most probable emotion label for text. Satisfied by
// the classifier package.
type Classifier interface {
	Classify(text string) string
}

// HistoryRecorder accepts a history entry for best-effort persistence.
// Implementations must not block the caller; delivery is not guaranteed.
type HistoryRecorder interface {
	Record(entry models.HistoryEntry)
}
