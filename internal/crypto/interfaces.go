package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher seals provider API keys before they reach the credential store and
// opens them again when a user's client is built. Implementations never
// return partially decrypted text.
type Cipher interface {
	// Encrypt seals plaintext under the vault key. Every call uses a fresh
	// random nonce, so encrypting the same text twice yields different
	// outputs. The result is printable and safe to store as TEXT.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a value produced by Encrypt. Any malformed, truncated or
	// modified input, or input sealed under a different key, returns an
	// error wrapping [ErrIntegrity].
	Decrypt(ciphertext string) (string, error)
}
