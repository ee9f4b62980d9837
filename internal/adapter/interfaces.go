package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/proxy-desk-bot/models"
)

// ProviderClient performs authenticated calls against the proxy provider on
// behalf of one user. A client is bound to one decrypted API key.
type ProviderClient interface {
	// Call sends exactly one request for op and never returns a Go error:
	// every outcome, including transport failures and unknown operations,
	// is described by the returned [models.RemoteCallResult].
	//
	// query values go to the query string (and fill {placeholders} in the
	// path). body values go to the JSON body for POST, PUT and PATCH, and
	// are folded into the query string for other methods.
	Call(ctx context.Context, op models.Operation, query map[string]string, body map[string]any) models.RemoteCallResult
}

// ClientFactory builds a [ProviderClient] for a decrypted API key.
type ClientFactory interface {
	NewClient(secret string) ProviderClient
}

// CallObserver receives the outcome of every provider call. It is how the
// metrics package hooks into the client without the client depending on it.
type CallObserver interface {
	ObserveProviderCall(op models.Operation, outcome Outcome, status int, seconds float64)
}
