package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The service refuses
// to start without a database DSN, a token signing key, a provider API key,
// or a model directory: none of these have a usable default.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Tips.APIKey == "" {
		return ErrInvalidTipsConfigs
	}

	if cfg.Classifier.ModelDir == "" {
		return ErrInvalidClassifierConfigs
	}

	return nil
}
