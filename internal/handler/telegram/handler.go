// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/proxy-desk-bot/internal/config"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/service"
	"github.com/MKhiriev/proxy-desk-bot/internal/utils"
	"github.com/MKhiriev/proxy-desk-bot/internal/workers"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const pollTimeoutSeconds = 60

// Handler long-polls Telegram and feeds updates to the dispatcher. It
// implements [workers.Worker].
type Handler struct {
	bot        BotAPI
	dispatcher service.Dispatcher
	pool       *workers.KeyedPool
	skips      SkipObserver
	traceIDs   *utils.UUIDGenerator

	logger *logger.Logger
}

// Option customizes a [Handler].
type Option func(*Handler)

// WithSkipObserver reports dropped updates to o.
func WithSkipObserver(o SkipObserver) Option {
	return func(h *Handler) {
		h.skips = o
	}
}

// NewBotAPI connects to Telegram with the configured token.
func NewBotAPI(cfg config.Bot) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error connecting to telegram: %w", err)
	}
	bot.Debug = cfg.Debug
	return bot, nil
}

func NewHandler(bot BotAPI, dispatcher service.Dispatcher, pool *workers.KeyedPool, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		bot:        bot,
		dispatcher: dispatcher,
		pool:       pool,
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run polls updates until ctx is cancelled. Events already handed to the
// pool keep a context that outlives ctx, so their replies are still sent
// during shutdown.
func (h *Handler) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	updates := h.bot.GetUpdatesChan(u)

	jobCtx := context.WithoutCancel(ctx)

	h.logger.Info().Str("func", "*Handler.Run").Msg("telegram polling started")
	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			h.logger.Info().Str("func", "*Handler.Run").Msg("telegram polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			h.dispatch(jobCtx, update)
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, update tgbotapi.Update) {
	in, skip := toInbound(update)
	if skip != "" {
		h.skip(skip)
		return
	}

	err := h.pool.Submit(in.event.UserID, func() { h.handle(ctx, in) })
	switch {
	case errors.Is(err, workers.ErrPoolClosed):
		h.skip(skipPoolClosed)
	case errors.Is(err, workers.ErrQueueFull):
		h.logger.Warn().
			Str("func", "*Handler.dispatch").
			Int64(logger.TelegramField, in.event.UserID).
			Msg("user queue is full, update dropped")
		h.skip(skipQueueFull)
	}
}

func (h *Handler) skip(reason string) {
	if h.skips != nil {
		h.skips.IncUpdateSkipped(reason)
	}
}

// handle runs one event end to end on the goroutine of its user.
func (h *Handler) handle(ctx context.Context, in inbound) {
	ctx, log := h.logger.WithEvent(ctx, h.traceIDs.Generate(), in.event.UserID)

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", "*Handler.handle").
				Interface("panic", r).
				Msg("recovered from panic while handling update")
		}
	}()

	if in.callbackID != "" {
		if _, err := h.bot.Request(tgbotapi.NewCallback(in.callbackID, "")); err != nil {
			log.Warn().Err(err).Str("func", "*Handler.handle").Msg("error answering callback query")
		}
	}

	for _, reply := range h.dispatcher.Handle(ctx, in.event) {
		if _, err := h.bot.Send(render(in.chatID, reply)); err != nil {
			log.Warn().Err(err).Str("func", "*Handler.handle").Msg("error sending reply")
		}
	}
}
