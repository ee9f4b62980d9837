package service

import (
	"github.com/MKhiriev/proxy-desk-bot/internal/adapter"
	"github.com/MKhiriev/proxy-desk-bot/internal/config"
	"github.com/MKhiriev/proxy-desk-bot/internal/crypto"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/store"
	"github.com/MKhiriev/proxy-desk-bot/internal/validators"
)

type Services struct {
	Conversations ConversationService
	Vault         VaultService
	Dispatcher    Dispatcher
}

// NewServices wires the bot services. Wrappers are applied to the
// dispatcher in order, so the first one is the innermost.
func NewServices(repos *store.Repositories, cipher crypto.Cipher, clients adapter.ClientFactory, cfg config.StructuredConfig, logger *logger.Logger, wrappers ...DispatcherWrapper) *Services {
	conversations := NewConversationService(cfg.Bot.PromptTTL)
	vault := NewVaultService(repos.Credentials, cipher, clients, logger)

	var dispatcher Dispatcher = NewDispatcher(conversations, vault, validators.NewInputParser(), logger)
	for _, w := range wrappers {
		dispatcher = w.Wrap(dispatcher)
	}

	return &Services{
		Conversations: conversations,
		Vault:         vault,
		Dispatcher:    dispatcher,
	}
}
