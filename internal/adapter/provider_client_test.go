// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/proxy-desk-bot/internal/config"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

// recordedRequest is what the stub provider saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   map[string]any
}

// stubProvider answers every request with status and body and records it.
type stubProvider struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	calls    atomic.Int32
}

func newStubProvider(t *testing.T, status int, body string) *stubProvider {
	t.Helper()
	s := &stubProvider{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)

		rec := recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  map[string]string{},
			Header: r.Header.Clone(),
		}
		for k := range r.URL.Query() {
			rec.Query[k] = r.URL.Query().Get(k)
		}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubProvider) last(t *testing.T) recordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests)
	return s.requests[len(s.requests)-1]
}

func providerConfig(baseURL string) config.Provider {
	return config.Provider{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
		AuthMode:       config.AuthModeHeader,
		AuthHeader:     "Authorization",
		AuthScheme:     "Bearer",
		AuthField:      "app_key",
		CodeField:      "code",
		MessageField:   "msg",
		SuccessCodes:   []string{"0", "200"},
	}
}

func newTestClient(t *testing.T, cfg config.Provider, registry *Registry) ProviderClient {
	t.Helper()
	c, err := NewProviderClient("user-key", cfg, registry, logger.Nop())
	require.NoError(t, err)
	return c
}

// ── classification ──────────────────────────────────────────────────────────

func TestCall_Success(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code":0,"data":{"balance":12}}`)
	c := newTestClient(t, providerConfig(srv.URL), nil)

	res := c.Call(context.Background(), models.OpStatus, nil, nil)

	require.True(t, res.Success, "err: %v", res.Err)
	assert.NoError(t, res.Err)
	status, ok := res.Status()
	assert.True(t, ok)
	assert.Equal(t, http.StatusOK, status)

	payload, ok := res.Payload.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, payload, "data")

	req := srv.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/status", req.Path)
}

// TestCall_EmbeddedCodeFailure verifies that a 200 with a non-success code
// in the body is still a failure carrying the provider message.
func TestCall_EmbeddedCodeFailure(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code": 401, "msg": "bad key"}`)
	c := newTestClient(t, providerConfig(srv.URL), nil)

	res := c.Call(context.Background(), models.OpStatus, nil, nil)

	assert.False(t, res.Success)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, models.ErrProvider)
	assert.Contains(t, res.Err.Error(), "bad key")

	var perr *models.ProviderError
	require.True(t, errors.As(res.Err, &perr))
	assert.Equal(t, "401", perr.Code)
	assert.Equal(t, http.StatusOK, perr.HTTPStatus)
	assert.Equal(t, "bad key", perr.Message)
}

func TestCall_SuccessCodes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		success bool
	}{
		{name: "zero", body: `{"code":0}`, success: true},
		{name: "two hundred", body: `{"code":200}`, success: true},
		{name: "string code", body: `{"code":"200"}`, success: true},
		{name: "no code field", body: `{"items":[]}`, success: true},
		{name: "array body", body: `[1,2,3]`, success: true},
		{name: "failure code", body: `{"code":10001,"message":"quota exceeded"}`, success: false},
		{name: "float code", body: `{"code":200.5}`, success: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newStubProvider(t, http.StatusOK, tt.body)
			c := newTestClient(t, providerConfig(srv.URL), nil)

			res := c.Call(context.Background(), models.OpAccountsList, nil, nil)
			assert.Equal(t, tt.success, res.Success, "err: %v", res.Err)
			assert.Equal(t, tt.success, res.Err == nil)
		})
	}
}

// TestCall_MessageFallback verifies that "message" is used when the
// configured message field is absent.
func TestCall_MessageFallback(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code":5,"message":"account locked"}`)
	c := newTestClient(t, providerConfig(srv.URL), nil)

	res := c.Call(context.Background(), models.OpStatus, nil, nil)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "account locked")
}

// TestCall_HTTPErrorOverridesBody verifies that a status >= 400 fails even
// when the body claims success.
func TestCall_HTTPErrorOverridesBody(t *testing.T) {
	srv := newStubProvider(t, http.StatusForbidden, `{"code":0,"msg":"forbidden ip"}`)
	c := newTestClient(t, providerConfig(srv.URL), nil)

	res := c.Call(context.Background(), models.OpStatus, nil, nil)

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, models.ErrProvider)
	status, ok := res.Status()
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, res.Err.Error(), "forbidden ip")
}

func TestCall_NonJSONBody(t *testing.T) {
	t.Run("success keeps raw text", func(t *testing.T) {
		srv := newStubProvider(t, http.StatusOK, "pong")
		c := newTestClient(t, providerConfig(srv.URL), nil)

		res := c.Call(context.Background(), models.OpStatus, nil, nil)
		require.True(t, res.Success)
		assert.Equal(t, models.RawPayload("pong"), res.Payload)
	})

	t.Run("error surfaces raw text", func(t *testing.T) {
		srv := newStubProvider(t, http.StatusBadGateway, "<html>upstream down</html>")
		c := newTestClient(t, providerConfig(srv.URL), nil)

		res := c.Call(context.Background(), models.OpStatus, nil, nil)
		assert.False(t, res.Success)
		assert.Equal(t, models.RawPayload("<html>upstream down</html>"), res.Payload)
		assert.Contains(t, res.Err.Error(), "upstream down")
	})

	t.Run("empty error body uses status text", func(t *testing.T) {
		srv := newStubProvider(t, http.StatusInternalServerError, "")
		c := newTestClient(t, providerConfig(srv.URL), nil)

		res := c.Call(context.Background(), models.OpStatus, nil, nil)
		assert.Nil(t, res.Payload)
		assert.Contains(t, res.Err.Error(), "Internal Server Error")
	})
}

// ── transport ───────────────────────────────────────────────────────────────

func TestCall_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, providerConfig(url), nil)
	res := c.Call(context.Background(), models.OpStatus, nil, nil)

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, models.ErrTransport)
	assert.Nil(t, res.HTTPStatus)
	_, ok := res.Status()
	assert.False(t, ok)
}

func TestCall_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := providerConfig(srv.URL)
	cfg.RequestTimeout = 50 * time.Millisecond
	c := newTestClient(t, cfg, nil)

	res := c.Call(context.Background(), models.OpStatus, nil, nil)
	assert.ErrorIs(t, res.Err, models.ErrTransport)
	assert.Nil(t, res.HTTPStatus)
}

// ── registry ────────────────────────────────────────────────────────────────

// TestCall_UnknownOperationMakesNoRequest verifies that an unknown or
// disabled operation fails locally with zero requests sent.
func TestCall_UnknownOperationMakesNoRequest(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code":0}`)

	registry, err := NewRegistry(map[string]models.Endpoint{
		string(models.OpTrafficUsage): {},
	})
	require.NoError(t, err)
	c := newTestClient(t, providerConfig(srv.URL), registry)

	for _, op := range []models.Operation{"nonexistent_op", models.OpTrafficUsage} {
		res := c.Call(context.Background(), op, nil, nil)
		assert.False(t, res.Success)
		assert.ErrorIs(t, res.Err, models.ErrUnknownOperation)
		assert.Contains(t, res.Err.Error(), "operation not configured")
		assert.Nil(t, res.HTTPStatus)
	}

	assert.Equal(t, int32(0), srv.calls.Load())
}

func TestCall_PathPlaceholders(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code":0}`)

	registry, err := NewRegistry(map[string]models.Endpoint{
		string(models.OpAccountsList): {Method: "get", Path: "/api/users/{username}/accounts"},
	})
	require.NoError(t, err)
	c := newTestClient(t, providerConfig(srv.URL), registry)

	query := map[string]string{"username": "alice", "page": "2"}
	res := c.Call(context.Background(), models.OpAccountsList, query, nil)
	require.True(t, res.Success, "err: %v", res.Err)

	req := srv.last(t)
	assert.Equal(t, "/api/users/alice/accounts", req.Path)
	assert.Equal(t, map[string]string{"page": "2"}, req.Query)
	assert.Equal(t, map[string]string{"username": "alice", "page": "2"}, query, "caller map must not be modified")

	res = c.Call(context.Background(), models.OpAccountsList, nil, nil)
	assert.ErrorIs(t, res.Err, ErrMissingPathParam)
	assert.Equal(t, int32(1), srv.calls.Load())
}

// TestCall_AbsolutePathBypassesBaseURL verifies that an absolute URL in the
// registry is called as-is.
func TestCall_AbsolutePathBypassesBaseURL(t *testing.T) {
	other := newStubProvider(t, http.StatusOK, `{"code":0}`)

	registry, err := NewRegistry(map[string]models.Endpoint{
		string(models.OpStatus): {Method: http.MethodGet, Path: other.URL + "/v2/ping"},
	})
	require.NoError(t, err)
	c := newTestClient(t, providerConfig("https://provider.invalid"), registry)

	res := c.Call(context.Background(), models.OpStatus, nil, nil)
	require.True(t, res.Success, "err: %v", res.Err)
	assert.Equal(t, "/v2/ping", other.last(t).Path)
}

// ── request shape and auth ──────────────────────────────────────────────────

func TestCall_HeaderAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		scheme string
		want   string
	}{
		{name: "bearer", header: "Authorization", scheme: "Bearer", want: "Bearer user-key"},
		{name: "bare key", header: "X-Api-Key", scheme: "none", want: "user-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newStubProvider(t, http.StatusOK, `{"code":0}`)
			cfg := providerConfig(srv.URL)
			cfg.AuthHeader = tt.header
			cfg.AuthScheme = tt.scheme

			res := newTestClient(t, cfg, nil).Call(context.Background(), models.OpStatus, nil, nil)
			require.True(t, res.Success)

			req := srv.last(t)
			assert.Equal(t, tt.want, req.Header.Get(tt.header))
			assert.NotContains(t, req.Query, "app_key")
		})
	}
}

func TestCall_ParamAuth(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code":0}`)
	cfg := providerConfig(srv.URL)
	cfg.AuthMode = config.AuthModeParam
	c := newTestClient(t, cfg, nil)

	t.Run("query for GET", func(t *testing.T) {
		res := c.Call(context.Background(), models.OpStatesList, map[string]string{"country_code": "US"}, nil)
		require.True(t, res.Success)

		req := srv.last(t)
		assert.Equal(t, map[string]string{"country_code": "US", "app_key": "user-key"}, req.Query)
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("body for POST", func(t *testing.T) {
		res := c.Call(context.Background(), models.OpAccountsAdd, nil, map[string]any{"accounts": "u:p"})
		require.True(t, res.Success)

		req := srv.last(t)
		assert.Equal(t, map[string]any{"accounts": "u:p", "app_key": "user-key"}, req.Body)
		assert.NotContains(t, req.Query, "app_key")
	})
}

// TestCall_BulkAddSendsSinglePost verifies the request produced for a bulk
// add of one account.
func TestCall_BulkAddSendsSinglePost(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code":0,"msg":"ok"}`)
	c := newTestClient(t, providerConfig(srv.URL), nil)

	res := c.Call(context.Background(), models.OpAccountsAdd, nil, map[string]any{"accounts": "user01:pass123"})
	require.True(t, res.Success)

	assert.Equal(t, int32(1), srv.calls.Load())
	req := srv.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/accounts/add", req.Path)
	assert.Equal(t, "user01:pass123", req.Body["accounts"])
	assert.Contains(t, req.Header.Get("Content-Type"), "application/json")
}

// TestCall_BodyFoldedIntoQueryForGET verifies that body parameters of an
// operation remapped to GET travel in the query string.
func TestCall_BodyFoldedIntoQueryForGET(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code":0}`)
	registry, err := NewRegistry(map[string]models.Endpoint{
		string(models.OpAccountQuota): {Method: http.MethodGet, Path: "/quota"},
	})
	require.NoError(t, err)

	res := newTestClient(t, providerConfig(srv.URL), registry).
		Call(context.Background(), models.OpAccountQuota, nil, map[string]any{"username": "bob", "quota": 10})
	require.True(t, res.Success)

	assert.Equal(t, map[string]string{"username": "bob", "quota": "10"}, srv.last(t).Query)
}

// ── observer ────────────────────────────────────────────────────────────────

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (o *recordingObserver) ObserveProviderCall(_ models.Operation, outcome Outcome, _ int, _ float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func TestClientFactory_ObserverSeesOutcomes(t *testing.T) {
	srv := newStubProvider(t, http.StatusOK, `{"code":7}`)
	obs := &recordingObserver{}

	f, err := NewClientFactory(providerConfig(srv.URL), nil, logger.Nop(), WithObserver(obs))
	require.NoError(t, err)

	c := f.NewClient("k")
	c.Call(context.Background(), models.OpStatus, nil, nil)
	c.Call(context.Background(), "missing", nil, nil)

	assert.Equal(t, []Outcome{OutcomeProviderError, OutcomeUnknownOperation}, obs.outcomes)
}

func TestNewClientFactory_InvalidConfig(t *testing.T) {
	_, err := NewClientFactory(config.Provider{}, nil, logger.Nop())
	assert.Error(t, err)

	cfg := providerConfig("https://api.example.com")
	cfg.AuthMode = "cookie"
	_, err = NewClientFactory(cfg, nil, logger.Nop())
	assert.Error(t, err)
}
