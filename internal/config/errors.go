package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them is
// fatal at startup.
var (
	// ErrMissingBotToken indicates that no Telegram token was configured.
	ErrMissingBotToken = errors.New("bot token is required")
	// ErrMissingCipherSecret indicates that no credential cipher secret was
	// configured. The bot refuses to run without one.
	ErrMissingCipherSecret = errors.New("cipher secret is required")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidProviderConfigs indicates invalid provider API settings
	// (for example, a missing base URL or an unknown auth mode).
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
)
