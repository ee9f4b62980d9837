package service

import "errors"

var (
	// ErrNotConnected is returned when a user without a stored key asks for
	// a provider client.
	ErrNotConnected = errors.New("no provider credential stored")

	ErrEmptyAPIKey = errors.New("api key is empty")
)
