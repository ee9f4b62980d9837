// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/proxy-desk-bot/internal/config"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/utils"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// providerFactory holds everything shared by the per-user clients: one
// HTTP connection pool, the registry and the classification rules.
type providerFactory struct {
	client     *utils.HTTPClient
	registry   *Registry
	auth       AuthInjector
	classifier statusClassifier
	observer   CallObserver
	logger     *logger.Logger
}

// providerClient is the private implementation of [ProviderClient].
type providerClient struct {
	*providerFactory
	secret string
}

// Option customizes the factory built by [NewClientFactory].
type Option func(*providerFactory)

// WithObserver reports every call outcome to o.
func WithObserver(o CallObserver) Option {
	return func(f *providerFactory) {
		f.observer = o
	}
}

// NewClientFactory validates cfg and returns a [ClientFactory] whose clients
// share one resty client configured with the provider base URL and timeout.
// Automatic retries are disabled: each Call is a single attempt.
func NewClientFactory(cfg config.Provider, registry *Registry, log *logger.Logger, opts ...Option) (ClientFactory, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider base url: %w", err)
	}

	auth, err := NewAuthInjector(cfg)
	if err != nil {
		return nil, err
	}

	if registry == nil {
		registry = DefaultRegistry()
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
	)

	f := &providerFactory{
		client:     client,
		registry:   registry,
		auth:       auth,
		classifier: newStatusClassifier(cfg.CodeField, cfg.MessageField, cfg.SuccessCodes),
		logger:     log,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// NewProviderClient is a shortcut for building a single client without
// keeping the factory around.
func NewProviderClient(secret string, cfg config.Provider, registry *Registry, log *logger.Logger) (ProviderClient, error) {
	f, err := NewClientFactory(cfg, registry, log)
	if err != nil {
		return nil, err
	}
	return f.NewClient(secret), nil
}

// NewClient implements [ClientFactory].
func (f *providerFactory) NewClient(secret string) ProviderClient {
	return &providerClient{providerFactory: f, secret: secret}
}

// Call implements [ProviderClient].
func (c *providerClient) Call(ctx context.Context, op models.Operation, query map[string]string, body map[string]any) models.RemoteCallResult {
	log := logger.FromContext(ctx)
	started := time.Now()

	result := c.call(ctx, op, query, body)

	outcome := OutcomeOf(result)
	status, _ := result.Status()
	if c.observer != nil {
		c.observer.ObserveProviderCall(op, outcome, status, time.Since(started).Seconds())
	}

	event := log.Debug()
	if !result.Success {
		event = log.Warn().AnErr("error", result.Err)
	}
	event.Str("func", "*providerClient.Call").
		Str("operation", string(op)).
		Str("outcome", string(outcome)).
		Int("status", status).
		Dur("elapsed", time.Since(started)).
		Msg("provider call finished")

	return result
}

func (c *providerClient) call(ctx context.Context, op models.Operation, query map[string]string, body map[string]any) models.RemoteCallResult {
	ep, ok := c.registry.Lookup(op)
	if !ok {
		return models.FailedResult(fmt.Errorf("%w: %s", models.ErrUnknownOperation, op))
	}

	out := &outgoingRequest{
		method: ep.Method,
		header: make(http.Header),
		query:  make(map[string]string, len(query)+1),
		body:   make(map[string]any, len(body)+1),
	}
	for k, v := range query {
		out.query[k] = v
	}

	path, err := expandPath(ep.Path, out.query)
	if err != nil {
		return models.FailedResult(fmt.Errorf("%s: %w", op, err))
	}

	if out.sendsBody() {
		for k, v := range body {
			out.body[k] = v
		}
	} else {
		for k, v := range body {
			out.query[k] = scalarString(v)
		}
	}

	c.auth.inject(out, c.secret)

	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(out.query)
	for name := range out.header {
		req.SetHeader(name, out.header.Get(name))
	}
	if out.sendsBody() {
		req.SetBody(out.body)
	}

	resp, err := req.Execute(out.method, path)
	if err != nil {
		return models.FailedResult(fmt.Errorf("%w: %w", models.ErrTransport, err))
	}

	return c.classifier.classify(resp.StatusCode(), decodeBody(resp.Body()))
}

// expandPath fills {name} placeholders from query, removing the used keys.
func expandPath(template string, query map[string]string) (string, error) {
	var missing string
	path := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := query[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		delete(query, name)
		return url.PathEscape(v)
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %s", ErrMissingPathParam, missing)
	}
	return path, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
