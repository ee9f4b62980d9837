// Package http implements the ops HTTP endpoint of the bot.
//
// It serves liveness (/healthz), build metadata (/version) and Prometheus
// metrics (/metrics). Request tracing and access logging are applied as
// middleware before requests reach the handlers.
package http
