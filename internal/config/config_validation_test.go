package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "sign-key",
			TokenIssuer:   "wellmind",
			TokenDuration: 24 * time.Hour,
		},
		Server: Server{HTTPAddress: ":8080", RequestTimeout: 30 * time.Second},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/wellmind"},
		},
		Classifier: Classifier{ModelDir: "model"},
		Tips:       Tips{APIKey: "key", BaseURL: "https://example.com", Model: "gemini-2.0-flash", Timeout: 15 * time.Second},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero token duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing api key", mutate: func(cfg *StructuredConfig) { cfg.Tips.APIKey = "" }, wantErr: ErrInvalidTipsConfigs},
		{name: "missing model dir", mutate: func(cfg *StructuredConfig) { cfg.Classifier.ModelDir = "" }, wantErr: ErrInvalidClassifierConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
