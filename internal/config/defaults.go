// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultQueueSize      = 16
	defaultLogLevel       = "debug"
	defaultRequestTimeout = 20 * time.Second
	defaultAuthMode       = AuthModeHeader
	defaultAuthHeader     = "Authorization"
	defaultAuthScheme     = "Bearer"
	defaultAuthField      = "app_key"
	defaultCodeField      = "code"
	defaultMessageField   = "msg"
)

// Supported values of [Provider.AuthMode].
const (
	AuthModeHeader = "header"
	AuthModeParam  = "param"
)

var defaultSuccessCodes = []string{"0", "200"}

// applyDefaults fills the optional settings left empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Bot.QueueSize <= 0 {
		cfg.Bot.QueueSize = defaultQueueSize
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Provider.RequestTimeout <= 0 {
		cfg.Provider.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Provider.AuthMode == "" {
		cfg.Provider.AuthMode = defaultAuthMode
	}
	if cfg.Provider.AuthHeader == "" {
		cfg.Provider.AuthHeader = defaultAuthHeader
	}
	if cfg.Provider.AuthScheme == "" {
		cfg.Provider.AuthScheme = defaultAuthScheme
	}
	if cfg.Provider.AuthField == "" {
		cfg.Provider.AuthField = defaultAuthField
	}
	if cfg.Provider.CodeField == "" {
		cfg.Provider.CodeField = defaultCodeField
	}
	if cfg.Provider.MessageField == "" {
		cfg.Provider.MessageField = defaultMessageField
	}
	if len(cfg.Provider.SuccessCodes) == 0 {
		cfg.Provider.SuccessCodes = append([]string(nil), defaultSuccessCodes...)
	}
}
