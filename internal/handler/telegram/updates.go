package telegram

import (
	"github.com/MKhiriev/proxy-desk-bot/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Reasons reported to [SkipObserver].
const (
	skipNoUser      = "no_user"
	skipUnsupported = "unsupported"
	skipPoolClosed  = "pool_closed"
	skipQueueFull   = "queue_full"
)

// inbound is an event together with the Telegram details needed to answer
// it.
type inbound struct {
	event      models.Event
	chatID     int64
	callbackID string
}

// toInbound converts an update. The second value is a skip reason when the
// update carries nothing the bot handles.
func toInbound(update tgbotapi.Update) (inbound, string) {
	if cq := update.CallbackQuery; cq != nil {
		if cq.From == nil {
			return inbound{}, skipNoUser
		}

		chatID := cq.From.ID
		if cq.Message != nil && cq.Message.Chat != nil {
			chatID = cq.Message.Chat.ID
		}

		return inbound{
			event:      models.Event{Kind: models.EventButton, UserID: cq.From.ID, Data: cq.Data},
			chatID:     chatID,
			callbackID: cq.ID,
		}, ""
	}

	msg := update.Message
	if msg == nil {
		return inbound{}, skipUnsupported
	}
	if msg.From == nil {
		return inbound{}, skipNoUser
	}
	if msg.Text == "" {
		return inbound{}, skipUnsupported
	}

	chatID := msg.From.ID
	if msg.Chat != nil {
		chatID = msg.Chat.ID
	}

	event := models.Event{Kind: models.EventText, UserID: msg.From.ID, Data: msg.Text}
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			event = models.Event{Kind: models.EventStart, UserID: msg.From.ID}
		case "cancel":
			event = models.Event{Kind: models.EventCancel, UserID: msg.From.ID}
		case "help":
			event = models.Event{Kind: models.EventHelp, UserID: msg.From.ID}
		}
	}

	return inbound{event: event, chatID: chatID}, ""
}
