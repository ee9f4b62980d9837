// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/proxy-desk-bot/internal/app"
	"github.com/MKhiriev/proxy-desk-bot/internal/crypto"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/validators"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

// dispatcher maps chat events to vault, conversation and provider calls.
// Every error is turned into a reply here; nothing above it needs to know
// about error kinds.
type dispatcher struct {
	conversations ConversationService
	vault         VaultService
	parser        validators.InputParser

	now    func() time.Time
	logger *logger.Logger
}

func NewDispatcher(conversations ConversationService, vault VaultService, parser validators.InputParser, logger *logger.Logger) Dispatcher {
	return &dispatcher{
		conversations: conversations,
		vault:         vault,
		parser:        parser,
		now:           time.Now,
		logger:        logger,
	}
}

func (d *dispatcher) Handle(ctx context.Context, event models.Event) (replies []models.Reply) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", "*dispatcher.Handle").
				Interface("panic", r).
				Str("event", event.Kind.String()).
				Msg("recovered from panic while handling event")
			replies = []models.Reply{textReply(app.MsgInternalError, menuOnly())}
		}
	}()

	log.Debug().
		Str("func", "*dispatcher.Handle").
		Str("event", event.Kind.String()).
		Str("data", event.Data).
		Msg("handling event")

	switch event.Kind {
	case models.EventStart:
		d.conversations.Cancel(event.UserID)
		return d.start(ctx, event.UserID)
	case models.EventHelp:
		return []models.Reply{textReply(app.MsgHelp, menuOnly())}
	case models.EventCancel:
		msg := app.MsgNothingToCancel
		if d.conversations.Cancel(event.UserID) {
			msg = app.MsgCancelled
		}
		return []models.Reply{textReply(msg, d.menuKeyboard(ctx, event.UserID))}
	case models.EventButton:
		return d.button(ctx, event.UserID, event.Data)
	case models.EventText:
		return d.text(ctx, event.UserID, event.Data)
	default:
		return []models.Reply{textReply(app.MsgUnknownAction, d.menuKeyboard(ctx, event.UserID))}
	}
}

func (d *dispatcher) start(ctx context.Context, userID int64) []models.Reply {
	connected, err := d.vault.HasCredential(ctx, userID)
	if err != nil {
		return d.failure(ctx, err, menuOnly())
	}

	if connected {
		return []models.Reply{textReply(app.MsgWelcomeConnected, mainMenu(true))}
	}
	return []models.Reply{textReply(app.MsgWelcomeDisconnected, mainMenu(false))}
}

// menuKeyboard returns the main menu matching the user's connection state.
// Storage errors fall back to the single back button.
func (d *dispatcher) menuKeyboard(ctx context.Context, userID int64) [][]models.Button {
	connected, err := d.vault.HasCredential(ctx, userID)
	if err != nil {
		return menuOnly()
	}
	return mainMenu(connected)
}

// button handles callback tags. Pressing any button drops a pending prompt.
func (d *dispatcher) button(ctx context.Context, userID int64, tag string) []models.Reply {
	d.conversations.Cancel(userID)

	switch tag {
	case TagMenu:
		return d.start(ctx, userID)
	case TagHelp:
		return []models.Reply{textReply(app.MsgHelp, menuOnly())}
	case TagConnect:
		d.conversations.Begin(userID, models.PromptConnectKey)
		return []models.Reply{textReply(app.MsgSendAPIKey, nil)}
	case TagDisconnect:
		if err := d.vault.Disconnect(ctx, userID); err != nil {
			return d.failure(ctx, err, menuOnly())
		}
		return []models.Reply{textReply(app.MsgDisconnected, mainMenu(false))}
	case TagAccountsList:
		return d.call(ctx, userID, models.OpAccountsList, nil, nil)
	case TagTrafficToday, TagTraffic7d, TagTraffic30d, TagTrafficAll:
		return d.call(ctx, userID, models.OpTrafficUsage, d.trafficQuery(tag), nil)
	case TagStaticIPList:
		return d.call(ctx, userID, models.OpStaticIPList, nil, nil)
	case TagProxyList:
		return d.call(ctx, userID, models.OpProxyList, nil, nil)
	case TagWhitelistList:
		return d.call(ctx, userID, models.OpWhitelistList, nil, nil)
	case TagSubusersList:
		return d.call(ctx, userID, models.OpSubusersList, nil, nil)
	}

	if menu, ok := submenus[tag]; ok {
		if replies, ok := d.requireCredential(ctx, userID); !ok {
			return replies
		}
		return []models.Reply{textReply(menu.title, menu.keyboard)}
	}

	if action, ok := promptActions[tag]; ok {
		if replies, ok := d.requireCredential(ctx, userID); !ok {
			return replies
		}
		d.conversations.Begin(userID, action.kind)
		return []models.Reply{promptReply(action.prompt)}
	}

	logger.FromContext(ctx).Warn().
		Str("func", "*dispatcher.button").
		Str("tag", tag).
		Msg("unknown callback tag")
	return []models.Reply{textReply(app.MsgUnknownAction, d.menuKeyboard(ctx, userID))}
}

// text handles a plain message. A pending prompt is consumed before the
// input is parsed, so a malformed answer returns the user to Idle.
func (d *dispatcher) text(ctx context.Context, userID int64, text string) []models.Reply {
	kind, ok := d.conversations.Take(userID)
	if !ok {
		return []models.Reply{textReply(app.MsgUseMenu, d.menuKeyboard(ctx, userID))}
	}

	if kind == models.PromptConnectKey {
		return d.connect(ctx, userID, text)
	}

	req, err := d.parser.Parse(ctx, kind, text)
	if err != nil {
		return d.failure(ctx, err, menuOnly())
	}

	return d.call(ctx, userID, req.Operation, req.Query, req.Body)
}

func (d *dispatcher) connect(ctx context.Context, userID int64, text string) []models.Reply {
	key, err := d.parser.ParseAPIKey(text)
	if err != nil {
		// a rejected replacement leaves the stored key in place
		return d.failure(ctx, err, d.menuKeyboard(ctx, userID))
	}

	result, err := d.vault.Connect(ctx, userID, key)
	if err != nil {
		return d.failure(ctx, err, menuOnly())
	}

	if result.Success {
		return []models.Reply{fitReply(models.Reply{
			Text:     app.MsgKeySaved,
			Code:     prettyPayload(result.Payload),
			Keyboard: mainMenu(true),
		})}
	}

	return []models.Reply{textReply(app.MsgKeySavedUnverified+"\n"+errorText(result.Err), mainMenu(true))}
}

func (d *dispatcher) requireCredential(ctx context.Context, userID int64) ([]models.Reply, bool) {
	connected, err := d.vault.HasCredential(ctx, userID)
	if err != nil {
		return d.failure(ctx, err, menuOnly()), false
	}
	if !connected {
		return []models.Reply{textReply(app.MsgConnectFirst, mainMenu(false))}, false
	}
	return nil, true
}

func (d *dispatcher) call(ctx context.Context, userID int64, op models.Operation, query map[string]string, body map[string]any) []models.Reply {
	client, err := d.vault.Client(ctx, userID)
	if err != nil {
		keyboard := menuOnly()
		if errors.Is(err, ErrNotConnected) || errors.Is(err, crypto.ErrIntegrity) {
			keyboard = mainMenu(false)
		}
		return d.failure(ctx, err, keyboard)
	}

	return []models.Reply{resultReply(op, client.Call(ctx, op, query, body), menuOnly())}
}

// trafficQuery builds the time window of a traffic preset. "All" sends no
// window at all.
func (d *dispatcher) trafficQuery(tag string) map[string]string {
	now := d.now().UTC()

	var start time.Time
	switch tag {
	case TagTrafficToday:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	case TagTraffic7d:
		start = now.AddDate(0, 0, -7)
	case TagTraffic30d:
		start = now.AddDate(0, 0, -30)
	default:
		return nil
	}

	return map[string]string{
		validators.FieldStartTime: strconv.FormatInt(start.Unix(), 10),
		validators.FieldEndTime:   strconv.FormatInt(now.Unix(), 10),
	}
}

func (d *dispatcher) failure(ctx context.Context, err error, keyboard [][]models.Button) []models.Reply {
	event := logger.FromContext(ctx).Warn()
	if errors.Is(err, validators.ErrInputFormat) {
		event = logger.FromContext(ctx).Debug()
	}
	event.Err(err).
		Str("func", "*dispatcher.failure").
		Msg("event handling failed")

	return []models.Reply{textReply(errorText(err), keyboard)}
}
