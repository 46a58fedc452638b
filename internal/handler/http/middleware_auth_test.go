package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellmind/wellmind/internal/service"
	"github.com/wellmind/wellmind/internal/utils"
	"github.com/wellmind/wellmind/models"
)

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

// nextRecorder is a terminal handler that records whether it was reached
// and which email the middleware put into the context.
type nextRecorder struct {
	called bool
	email  string
	hasKey bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.email, n.hasKey = utils.GetEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{Email: "alice@example.com"}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	assert.True(t, next.hasKey)
	assert.Equal(t, "alice@example.com", next.email)
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no token", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &nextRecorder{}
			req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			h.auth(next.handler()).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, next.called)
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	h := newTestHandler(t, auth, nil)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)

	var resp models.ErrorResponse
	decodeJSON(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, service.ErrTokenIsExpired.Error(), resp.Error)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, auth, nil)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
