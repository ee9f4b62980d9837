package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/proxy-desk-bot/internal/config"
)

// outgoingRequest is the mutable view of a request that an
// [AuthInjector] decorates before it is sent.
type outgoingRequest struct {
	method string
	header http.Header
	query  map[string]string
	body   map[string]any
}

func (r *outgoingRequest) sendsBody() bool {
	switch r.method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// AuthInjector attaches the user's API key to an outgoing request.
type AuthInjector interface {
	inject(r *outgoingRequest, secret string)
}

// headerAuth sends the key in a header, optionally behind a scheme such as
// "Bearer".
type headerAuth struct {
	header string
	scheme string
}

func (a headerAuth) inject(r *outgoingRequest, secret string) {
	value := secret
	if a.scheme != "" {
		value = a.scheme + " " + secret
	}
	r.header.Set(a.header, value)
}

// paramAuth merges the key into the query string of body-less requests and
// into the JSON body otherwise.
type paramAuth struct {
	field string
}

func (a paramAuth) inject(r *outgoingRequest, secret string) {
	if r.sendsBody() {
		r.body[a.field] = secret
		return
	}
	r.query[a.field] = secret
}

// NewAuthInjector builds the injector selected by cfg.AuthMode. The scheme
// value "none" sends the bare key in header mode.
func NewAuthInjector(cfg config.Provider) (AuthInjector, error) {
	switch cfg.AuthMode {
	case config.AuthModeHeader, "":
		header := cfg.AuthHeader
		if header == "" {
			header = "Authorization"
		}
		scheme := strings.TrimSpace(cfg.AuthScheme)
		if strings.EqualFold(scheme, "none") {
			scheme = ""
		}
		return headerAuth{header: header, scheme: scheme}, nil
	case config.AuthModeParam:
		field := cfg.AuthField
		if field == "" {
			field = "app_key"
		}
		return paramAuth{field: field}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}
