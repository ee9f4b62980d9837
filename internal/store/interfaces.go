package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
)

// CredentialRepository persists one encrypted provider key per Telegram
// user. It never sees plaintext: values are sealed by the caller.
//
// Every method is a single SQL statement, so concurrent calls for the same
// user are serialized by the database.
type CredentialRepository interface {
	// Put stores encryptedSecret for userID, replacing any previous value.
	// created_at of an existing row is kept, updated_at is bumped.
	Put(ctx context.Context, userID int64, encryptedSecret string) error

	// Get returns the stored ciphertext or [ErrCredentialNotFound].
	Get(ctx context.Context, userID int64) (string, error)

	// Delete removes the credential of userID. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, userID int64) error

	// Exists reports whether userID has a stored credential.
	Exists(ctx context.Context, userID int64) (bool, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
// The bot never retries on its own; the classification is logged so an
// operator can tell transient outages from schema problems.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
