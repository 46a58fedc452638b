package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/internal/service"
	"github.com/wellmind/wellmind/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock AnalyzerService
// ─────────────────────────────────────────────

type mockAnalyzerService struct {
	analyzeFn func(ctx context.Context, email string, text string) (models.AnalyzeResponse, error)
	historyFn func(ctx context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error)
}

func (m *mockAnalyzerService) Analyze(ctx context.Context, email string, text string) (models.AnalyzeResponse, error) {
	return m.analyzeFn(ctx, email, text)
}

func (m *mockAnalyzerService) History(ctx context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	return m.historyFn(ctx, email, filter)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler from the given service mocks.
// Either mock may be nil when the test does not exercise it.
func newTestHandler(t *testing.T, auth service.AuthService, analyzer service.AnalyzerService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		AnalyzerService: analyzer,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeJSON parses a JSON response body into out.
func decodeJSON(t *testing.T, body []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, out))
}
