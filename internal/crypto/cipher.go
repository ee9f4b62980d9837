// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// vaultSalt is the fixed application salt for key derivation. The secret
// itself is the only per-deployment input, so the same secret always
// yields the same key across restarts.
var vaultSalt = []byte("proxy-desk-bot/credential-vault/v1")

// encoding is strict so that every character of a stored value is
// significant: a modified character either fails decoding or changes the
// decoded bytes and is then rejected by GCM.
var encoding = base64.RawURLEncoding.Strict()

// aesGCMCipher is the private implementation of [Cipher].
type aesGCMCipher struct {
	aead cipher.AEAD
}

// NewCipher derives a 256-bit key from secret with Argon2id and returns an
// AES-256-GCM [Cipher]. The derivation runs once here, not per call.
//
// Argon2id parameters follow OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// Returns [ErrEmptySecret] when secret is empty.
func NewCipher(secret string) (Cipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := argon2.IDKey([]byte(secret), vaultSalt, 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesGCMCipher{aead: aead}, nil
}

// Encrypt implements [Cipher]. Output layout before encoding:
// nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes).
func (c *aesGCMCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return encoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher].
func (c *aesGCMCipher) Decrypt(ciphertext string) (string, error) {
	blob, err := encoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrIntegrity, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize+c.aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrIntegrity)
	}

	plaintext, err := c.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIntegrity, err)
	}

	return string(plaintext), nil
}
