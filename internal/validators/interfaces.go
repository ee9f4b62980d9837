// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns the free text a user types in reply to a prompt
// into a provider request, or explains which format was expected.
//
// Every parse failure is a [*FormatError] wrapping [ErrInputFormat], so the
// dispatcher can show the expected format without knowing the prompt.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/proxy-desk-bot/models"
)

// InputParser parses prompt answers.
type InputParser interface {
	// Parse converts text typed for kind into the provider request it
	// stands for. kind must not be [models.PromptConnectKey].
	Parse(ctx context.Context, kind models.PromptKind, text string) (models.ProviderRequest, error)

	// ParseAPIKey validates the text sent in reply to the connect prompt
	// and returns the trimmed key.
	ParseAPIKey(text string) (string, error)
}
