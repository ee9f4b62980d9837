// Package server runs the bot's long-lived components: the Telegram
// poller with its worker pool and the optional ops HTTP server.
//
// It handles startup, signal handling and graceful shutdown. On shutdown
// polling stops first, queued updates are drained, and the ops server is
// closed last.
package server
