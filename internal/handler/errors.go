// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the Telegram
// client, the services or the worker pool is missing. Without them the bot
// cannot receive updates, so this is treated as a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
