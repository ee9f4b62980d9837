// Package telegram is the chat transport of the bot. It long-polls the
// Telegram Bot API, turns updates into transport-independent events, runs
// them through the dispatcher on a keyed worker pool and sends the replies
// back as HTML messages with inline keyboards.
package telegram
