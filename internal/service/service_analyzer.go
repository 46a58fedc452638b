package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wellmind/wellmind/internal/adapter"
	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/internal/store"
	"github.com/wellmind/wellmind/models"
)

// analyzerService is the concrete implementation of AnalyzerService.
// It runs the emotion classifier over the submitted text, asks the tip
// generator for a supportive suggestion, and hands the finished entry off to
// the history recorder.
type analyzerService struct {
	classifier        Classifier
	tipGenerator      adapter.TipGenerator
	historyRecorder   HistoryRecorder
	historyRepository store.HistoryRepository
	logger            *logger.Logger
}

// NewAnalyzerService constructs a new AnalyzerService.
func NewAnalyzerService(
	classifier Classifier,
	tipGenerator adapter.TipGenerator,
	historyRecorder HistoryRecorder,
	historyRepository store.HistoryRepository,
	logger *logger.Logger,
) AnalyzerService {
	return &analyzerService{
		classifier:        classifier,
		tipGenerator:      tipGenerator,
		historyRecorder:   historyRecorder,
		historyRepository: historyRepository,
		logger:            logger,
	}
}

// Analyze classifies the emotion of text and pairs it with a supportive tip.
//
// Whitespace-only text is rejected with ErrEmptyInput. A tip generator
// failure never fails the analysis: the generator always returns a usable
// fallback tip and the error is only logged.
//
// When email is non-empty the finished entry is recorded to history through
// the HistoryRecorder. Recording is best effort and does not block or fail
// the response.
func (s *analyzerService) Analyze(ctx context.Context, email string, text string) (models.AnalyzeResponse, error) {
	log := logger.FromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return models.AnalyzeResponse{}, ErrEmptyInput
	}

	emotion := s.classifier.Classify(text)

	tip, err := s.tipGenerator.GenerateTip(ctx, text, emotion)
	if err != nil {
		log.Err(err).Str("emotion", emotion).Msg("tip generation failed, using fallback")
	}

	if email != "" {
		s.historyRecorder.Record(models.HistoryEntry{
			Email:     email,
			Text:      text,
			Emotion:   emotion,
			Tip:       tip,
			Timestamp: time.Now().UTC(),
		})
	}

	return models.AnalyzeResponse{Emotion: emotion, Tip: tip}, nil
}

// History returns the stored analysis entries for email, newest data as
// persisted. The filter may narrow results by emotion and cap their number.
//
// An empty email is rejected with ErrInvalidDataProvided.
func (s *analyzerService) History(ctx context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("history requested without email")
		return nil, ErrInvalidDataProvided
	}

	entries, err := s.historyRepository.FindByEmail(ctx, email, filter)
	if err != nil {
		log.Err(err).Str("email", email).Msg("history lookup failed")
		return nil, fmt.Errorf("history lookup failed: %w", err)
	}

	return entries, nil
}
