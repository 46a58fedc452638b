package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellmind/wellmind/internal/adapter"
	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/models"
)

func newTestAnalyzerService(
	classifier Classifier,
	tips adapter.TipGenerator,
	recorder HistoryRecorder,
	history *historyRepositoryMock,
) AnalyzerService {
	return NewAnalyzerService(classifier, tips, recorder, history, logger.Nop())
}

func TestAnalyzerService_Analyze_Success(t *testing.T) {
	classifier := &classifierMock{
		classifyFunc: func(text string) string {
			assert.Equal(t, "I feel wonderful today", text)
			return "joy"
		},
	}
	tips := &tipGeneratorMock{
		generateTipFunc: func(_ context.Context, text string, emotion string) (string, error) {
			assert.Equal(t, "joy", emotion)
			return "Keep doing what brings you joy.", nil
		},
	}
	recorder := &historyRecorderMock{}
	svc := newTestAnalyzerService(classifier, tips, recorder, &historyRepositoryMock{})

	resp, err := svc.Analyze(context.Background(), "dana@example.com", "I feel wonderful today")
	require.NoError(t, err)

	assert.Equal(t, "joy", resp.Emotion)
	assert.Equal(t, "Keep doing what brings you joy.", resp.Tip)

	require.Len(t, recorder.recorded, 1)
	entry := recorder.recorded[0]
	assert.Equal(t, "dana@example.com", entry.Email)
	assert.Equal(t, "I feel wonderful today", entry.Text)
	assert.Equal(t, "joy", entry.Emotion)
	assert.Equal(t, "Keep doing what brings you joy.", entry.Tip)
	assert.WithinDuration(t, time.Now().UTC(), entry.Timestamp, time.Minute)
}

func TestAnalyzerService_Analyze_EmptyInput(t *testing.T) {
	svc := newTestAnalyzerService(&classifierMock{}, &tipGeneratorMock{}, &historyRecorderMock{}, &historyRepositoryMock{})

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := svc.Analyze(context.Background(), "dana@example.com", text)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestAnalyzerService_Analyze_TrimsText(t *testing.T) {
	classifier := &classifierMock{
		classifyFunc: func(text string) string {
			assert.Equal(t, "so tired", text)
			return "sadness"
		},
	}
	tips := &tipGeneratorMock{
		generateTipFunc: func(_ context.Context, _ string, _ string) (string, error) {
			return "Rest is productive too.", nil
		},
	}
	recorder := &historyRecorderMock{}
	svc := newTestAnalyzerService(classifier, tips, recorder, &historyRepositoryMock{})

	_, err := svc.Analyze(context.Background(), "dana@example.com", "  so tired \n")
	require.NoError(t, err)

	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, "so tired", recorder.recorded[0].Text)
}

func TestAnalyzerService_Analyze_TipFailureStillSucceeds(t *testing.T) {
	classifier := &classifierMock{
		classifyFunc: func(_ string) string { return "fear" },
	}
	tips := &tipGeneratorMock{
		generateTipFunc: func(_ context.Context, _ string, _ string) (string, error) {
			return adapter.FallbackTipUnavailable, adapter.ErrUpstreamStatus
		},
	}
	recorder := &historyRecorderMock{}
	svc := newTestAnalyzerService(classifier, tips, recorder, &historyRepositoryMock{})

	resp, err := svc.Analyze(context.Background(), "dana@example.com", "worried about tomorrow")
	require.NoError(t, err)

	assert.Equal(t, "fear", resp.Emotion)
	assert.Equal(t, adapter.FallbackTipUnavailable, resp.Tip)

	// fallback tip is still worth keeping in history
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, adapter.FallbackTipUnavailable, recorder.recorded[0].Tip)
}

func TestAnalyzerService_Analyze_NoEmailSkipsHistory(t *testing.T) {
	classifier := &classifierMock{
		classifyFunc: func(_ string) string { return "joy" },
	}
	tips := &tipGeneratorMock{
		generateTipFunc: func(_ context.Context, _ string, _ string) (string, error) {
			return "Enjoy the moment.", nil
		},
	}
	recorder := &historyRecorderMock{}
	svc := newTestAnalyzerService(classifier, tips, recorder, &historyRepositoryMock{})

	_, err := svc.Analyze(context.Background(), "", "what a day")
	require.NoError(t, err)
	assert.Empty(t, recorder.recorded)
}

func TestAnalyzerService_History_Success(t *testing.T) {
	want := []models.HistoryEntry{
		{Email: "dana@example.com", Text: "what a day", Emotion: "joy", Tip: "Enjoy the moment."},
	}
	history := &historyRepositoryMock{
		findByEmailFunc: func(_ context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
			assert.Equal(t, "dana@example.com", email)
			assert.Equal(t, "joy", filter.Emotion)
			assert.Equal(t, uint64(10), filter.Limit)
			return want, nil
		},
	}
	svc := newTestAnalyzerService(&classifierMock{}, &tipGeneratorMock{}, &historyRecorderMock{}, history)

	got, err := svc.History(context.Background(), "dana@example.com", models.HistoryFilter{Emotion: "joy", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAnalyzerService_History_EmptyEmail(t *testing.T) {
	svc := newTestAnalyzerService(&classifierMock{}, &tipGeneratorMock{}, &historyRecorderMock{}, &historyRepositoryMock{})

	_, err := svc.History(context.Background(), "", models.HistoryFilter{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAnalyzerService_History_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection reset")
	history := &historyRepositoryMock{
		findByEmailFunc: func(_ context.Context, _ string, _ models.HistoryFilter) ([]models.HistoryEntry, error) {
			return nil, repoErr
		},
	}
	svc := newTestAnalyzerService(&classifierMock{}, &tipGeneratorMock{}, &historyRecorderMock{}, history)

	_, err := svc.History(context.Background(), "dana@example.com", models.HistoryFilter{})
	assert.ErrorIs(t, err, repoErr)
}
