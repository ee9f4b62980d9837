package crypto

import "errors"

var (
	// ErrIntegrity is returned when a stored credential cannot be opened:
	// it was tampered with, truncated, or sealed under another secret.
	ErrIntegrity = errors.New("credential integrity check failed")
	// ErrEmptySecret is returned by [NewCipher] when no vault secret is set.
	ErrEmptySecret = errors.New("cipher secret is empty")
)
