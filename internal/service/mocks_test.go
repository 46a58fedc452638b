package service

import (
	"context"

	"github.com/wellmind/wellmind/models"
)

// userRepositoryMock implements store.UserRepository with function fields so
// each test can plug in exactly the behaviour it needs.
type userRepositoryMock struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *userRepositoryMock) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFunc(ctx, email)
}

type historyRepositoryMock struct {
	saveEntryFunc   func(ctx context.Context, entry models.HistoryEntry) error
	findByEmailFunc func(ctx context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error)
}

func (m *historyRepositoryMock) SaveEntry(ctx context.Context, entry models.HistoryEntry) error {
	return m.saveEntryFunc(ctx, entry)
}

func (m *historyRepositoryMock) FindByEmail(ctx context.Context, email string, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	return m.findByEmailFunc(ctx, email, filter)
}

type classifierMock struct {
	classifyFunc func(text string) string
}

func (m *classifierMock) Classify(text string) string {
	return m.classifyFunc(text)
}

type tipGeneratorMock struct {
	generateTipFunc func(ctx context.Context, text string, emotion string) (string, error)
}

func (m *tipGeneratorMock) GenerateTip(ctx context.Context, text string, emotion string) (string, error) {
	return m.generateTipFunc(ctx, text, emotion)
}

type historyRecorderMock struct {
	recorded []models.HistoryEntry
}

func (m *historyRecorderMock) Record(entry models.HistoryEntry) {
	m.recorded = append(m.recorded, entry)
}
