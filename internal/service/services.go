package service

import (
	"github.com/wellmind/wellmind/internal/adapter"
	"github.com/wellmind/wellmind/internal/config"
	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/internal/store"
)

// Services bundles every application service behind one value so the HTTP
// layer can be constructed from a single dependency.
type Services struct {
	AuthService
	AnalyzerService
}

// NewServices wires the service layer together from its dependencies:
// repositories from storages, the emotion classifier, the tip generator,
// the background history recorder, and token parameters from cfg.
func NewServices(
	storages *store.Storages,
	classifier Classifier,
	tipGenerator adapter.TipGenerator,
	historyRecorder HistoryRecorder,
	cfg config.App,
	logger *logger.Logger,
) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		AnalyzerService: NewAnalyzerService(classifier, tipGenerator, historyRecorder, storages.HistoryRepository, logger),
	}
}
