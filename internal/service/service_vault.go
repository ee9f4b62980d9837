package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/proxy-desk-bot/internal/adapter"
	"github.com/MKhiriev/proxy-desk-bot/internal/crypto"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/store"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

type vaultService struct {
	credentials store.CredentialRepository
	cipher      crypto.Cipher
	clients     adapter.ClientFactory

	logger *logger.Logger
}

func NewVaultService(credentials store.CredentialRepository, cipher crypto.Cipher, clients adapter.ClientFactory, logger *logger.Logger) VaultService {
	return &vaultService{
		credentials: credentials,
		cipher:      cipher,
		clients:     clients,
		logger:      logger,
	}
}

func (v *vaultService) Connect(ctx context.Context, userID int64, apiKey string) (models.RemoteCallResult, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return models.RemoteCallResult{}, ErrEmptyAPIKey
	}

	sealed, err := v.cipher.Encrypt(apiKey)
	if err != nil {
		return models.RemoteCallResult{}, fmt.Errorf("error encrypting api key: %w", err)
	}

	if err = v.credentials.Put(ctx, userID, sealed); err != nil {
		return models.RemoteCallResult{}, fmt.Errorf("error storing credential: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*vaultService.Connect").
		Str("api_key", logger.Redact(apiKey)).
		Msg("credential stored")

	return v.clients.NewClient(apiKey).Call(ctx, models.OpStatus, nil, nil), nil
}

func (v *vaultService) Disconnect(ctx context.Context, userID int64) error {
	if err := v.credentials.Delete(ctx, userID); err != nil {
		return fmt.Errorf("error deleting credential: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*vaultService.Disconnect").
		Msg("credential deleted")
	return nil
}

func (v *vaultService) HasCredential(ctx context.Context, userID int64) (bool, error) {
	ok, err := v.credentials.Exists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("error checking credential: %w", err)
	}
	return ok, nil
}

func (v *vaultService) Client(ctx context.Context, userID int64) (adapter.ProviderClient, error) {
	sealed, err := v.credentials.Get(ctx, userID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading credential: %w", err)
	}

	secret, err := v.cipher.Decrypt(sealed)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "*vaultService.Client").
			Msg("stored credential could not be decrypted")
		return nil, fmt.Errorf("error decrypting credential: %w", err)
	}

	return v.clients.NewClient(secret), nil
}
