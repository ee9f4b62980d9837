// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] carries every
// value the bot cannot start without. All problems are reported at once,
// joined with [errors.Join], so an operator can fix them in one pass.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Bot.Token == "" {
		errs = append(errs, ErrMissingBotToken)
	}

	if cfg.App.CipherSecret == "" {
		errs = append(errs, ErrMissingCipherSecret)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if err := cfg.Provider.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (p Provider) validate() error {
	if p.BaseURL == "" {
		return fmt.Errorf("%w: base url is required", ErrInvalidProviderConfigs)
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base url %q is not an http(s) url", ErrInvalidProviderConfigs, p.BaseURL)
	}

	switch p.AuthMode {
	case AuthModeHeader, AuthModeParam:
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidProviderConfigs, p.AuthMode)
	}

	return nil
}
