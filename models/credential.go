// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserCredential is the persisted provider credential of a single Telegram
// user. Only the ciphertext is ever stored; the plaintext key exists in
// memory for the duration of one provider call.
type UserCredential struct {
	// UserID is the Telegram user identifier. It is the primary key, so a
	// user owns at most one credential row.
	UserID int64 `json:"user_id"`

	// EncryptedSecret is the output of the credential cipher. It is opaque to
	// every component except internal/crypto.
	EncryptedSecret string `json:"-"`

	// CreatedAt is set by the database when the row is first inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the database on every upsert.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the UserCredential model.
func (c UserCredential) TableName() string {
	return "credentials"
}
