// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/proxy-desk-bot/models"
)

// defaultEndpoints is the built-in mapping used when no operations file
// overrides an entry.
var defaultEndpoints = map[models.Operation]models.Endpoint{
	models.OpStatus:          {Method: http.MethodGet, Path: "/api/status"},
	models.OpAccountsList:    {Method: http.MethodGet, Path: "/api/accounts"},
	models.OpAccountsAdd:     {Method: http.MethodPost, Path: "/api/accounts/add"},
	models.OpAccountsDelete:  {Method: http.MethodPost, Path: "/api/accounts/delete"},
	models.OpAccountsEnable:  {Method: http.MethodPost, Path: "/api/accounts/enable"},
	models.OpAccountsDisable: {Method: http.MethodPost, Path: "/api/accounts/disable"},
	models.OpAccountPassword: {Method: http.MethodPost, Path: "/api/accounts/password"},
	models.OpAccountRemark:   {Method: http.MethodPost, Path: "/api/accounts/remark"},
	models.OpAccountQuota:    {Method: http.MethodPost, Path: "/api/accounts/quota"},
	models.OpTrafficUsage:    {Method: http.MethodGet, Path: "/api/traffic"},
	models.OpStatesList:      {Method: http.MethodGet, Path: "/api/locations/states"},
	models.OpCitiesList:      {Method: http.MethodGet, Path: "/api/locations/cities"},
	models.OpStaticIPList:    {Method: http.MethodGet, Path: "/api/static-ips"},
	models.OpProxyList:       {Method: http.MethodGet, Path: "/api/proxy/list"},
	models.OpProxyRotate:     {Method: http.MethodPost, Path: "/api/proxy/rotate"},
	models.OpWhitelistList:   {Method: http.MethodGet, Path: "/api/whitelist/list"},
	models.OpWhitelistAdd:    {Method: http.MethodPost, Path: "/api/whitelist/add"},
	models.OpWhitelistRemove: {Method: http.MethodPost, Path: "/api/whitelist/remove"},
	models.OpSubusersList:    {Method: http.MethodGet, Path: "/api/subuser/list"},
	models.OpSubuserCreate:   {Method: http.MethodPost, Path: "/api/subuser/create"},
	models.OpSubuserDisable:  {Method: http.MethodPost, Path: "/api/subuser/disable"},
}

var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// Registry maps every [models.Operation] to the endpoint that serves it.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	endpoints map[models.Operation]models.Endpoint
}

// DefaultRegistry returns a registry holding the built-in endpoints.
func DefaultRegistry() *Registry {
	endpoints := make(map[models.Operation]models.Endpoint, len(defaultEndpoints))
	for op, ep := range defaultEndpoints {
		endpoints[op] = ep
	}
	return &Registry{endpoints: endpoints}
}

// NewRegistry builds a registry from the defaults with overrides applied.
// Override keys must be known operation names. An override with an empty
// path disables the operation.
func NewRegistry(overrides map[string]models.Endpoint) (*Registry, error) {
	r := DefaultRegistry()

	// sorted for a stable first error
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		op, err := models.ParseOperation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
		}

		ep, err := normalizeEndpoint(overrides[name])
		if err != nil {
			return nil, fmt.Errorf("%w: operation %s: %w", ErrInvalidRegistry, name, err)
		}
		r.endpoints[op] = ep
	}

	return r, nil
}

// LoadRegistry reads overrides from path and applies them to the defaults.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
// An empty path yields [DefaultRegistry].
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading operations file: %w", err)
	}

	overrides := make(map[string]models.Endpoint)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &overrides)
	default:
		err = json.Unmarshal(data, &overrides)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrInvalidRegistry, path, err)
	}

	return NewRegistry(overrides)
}

// Lookup returns the endpoint of op. ok is false for operations that are
// unknown or disabled.
func (r *Registry) Lookup(op models.Operation) (models.Endpoint, bool) {
	ep, ok := r.endpoints[op]
	if !ok || !ep.Configured() {
		return models.Endpoint{}, false
	}
	return ep, true
}

func normalizeEndpoint(ep models.Endpoint) (models.Endpoint, error) {
	ep.Path = strings.TrimSpace(ep.Path)
	ep.Method = strings.ToUpper(strings.TrimSpace(ep.Method))

	if ep.Path == "" {
		return models.Endpoint{}, nil
	}

	if _, ok := allowedMethods[ep.Method]; !ok {
		return models.Endpoint{}, fmt.Errorf("unsupported method %q", ep.Method)
	}

	if !strings.HasPrefix(ep.Path, "/") && !isAbsoluteURL(ep.Path) {
		return models.Endpoint{}, fmt.Errorf("path %q must start with / or be an http(s) url", ep.Path)
	}

	return ep, nil
}

func isAbsoluteURL(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
