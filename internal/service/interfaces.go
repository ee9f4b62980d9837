package service

import (
	"context"

	"github.com/MKhiriev/proxy-desk-bot/internal/adapter"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

// ConversationService tracks which free-text input each user is expected
// to send next. A user has at most one pending prompt.
type ConversationService interface {
	// Begin sets the pending prompt of userID, replacing any previous one.
	Begin(userID int64, kind models.PromptKind)
	// Take returns the pending prompt of userID and clears it in the same
	// step. ok is false when the user is Idle.
	Take(userID int64) (kind models.PromptKind, ok bool)
	// Cancel clears the pending prompt and reports whether one was set.
	Cancel(userID int64) bool
	// Peek returns the current state without changing it.
	Peek(userID int64) models.ConversationState
}

type VaultService interface {
	// Connect encrypts and stores apiKey for userID, then verifies it with a
	// status call. The key stays stored even when verification fails; the
	// returned result tells the caller how the check went.
	Connect(ctx context.Context, userID int64, apiKey string) (models.RemoteCallResult, error)
	Disconnect(ctx context.Context, userID int64) error
	HasCredential(ctx context.Context, userID int64) (bool, error)
	// Client returns a provider client bound to the decrypted key of userID,
	// or an error wrapping [ErrNotConnected] or crypto.ErrIntegrity.
	Client(ctx context.Context, userID int64) (adapter.ProviderClient, error)
}

// Dispatcher turns one chat event into the replies to send back.
// Handle never returns an empty slice and never panics on user input.
type Dispatcher interface {
	Handle(ctx context.Context, event models.Event) []models.Reply
}

// DispatcherWrapper defines middleware composition for Dispatcher.
// Implementations wrap an existing Dispatcher to add behavior such as
// logging or metrics.
type DispatcherWrapper interface {
	Wrap(Dispatcher) Dispatcher
}

// EventObserver receives the kind and handling time of every event.
type EventObserver interface {
	ObserveEvent(kind models.EventKind, seconds float64)
}
