package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token signing key or zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidTipsConfigs indicates invalid tip-provider settings
	// (for example, a missing API key).
	ErrInvalidTipsConfigs = errors.New("invalid tips configuration")
	// ErrInvalidClassifierConfigs indicates invalid classifier settings
	// (for example, an empty model directory).
	ErrInvalidClassifierConfigs = errors.New("invalid classifier configuration")
)
