package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/proxy-desk-bot/models"
)

// maxRawMessage bounds how much of a non-JSON error body is surfaced.
const maxRawMessage = 512

// Outcome labels the result of a call for logs and metrics.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeTransportError   Outcome = "transport_error"
	OutcomeProviderError    Outcome = "provider_error"
	OutcomeUnknownOperation Outcome = "unknown_operation"
	OutcomeLocalError       Outcome = "local_error"
)

// OutcomeOf maps a result to its [Outcome].
func OutcomeOf(r models.RemoteCallResult) Outcome {
	switch {
	case r.Success:
		return OutcomeOK
	case errors.Is(r.Err, models.ErrTransport):
		return OutcomeTransportError
	case errors.Is(r.Err, models.ErrProvider):
		return OutcomeProviderError
	case errors.Is(r.Err, models.ErrUnknownOperation):
		return OutcomeUnknownOperation
	default:
		return OutcomeLocalError
	}
}

// statusClassifier applies the two-layer success check: the HTTP status
// first, then the status code the provider embeds in its JSON body.
type statusClassifier struct {
	codeField    string
	messageField string
	successCodes map[string]struct{}
}

func newStatusClassifier(codeField, messageField string, successCodes []string) statusClassifier {
	codes := make(map[string]struct{}, len(successCodes))
	for _, c := range successCodes {
		if c = strings.TrimSpace(c); c != "" {
			codes[c] = struct{}{}
		}
	}
	if codeField == "" {
		codeField = "code"
	}
	if messageField == "" {
		messageField = "msg"
	}
	return statusClassifier{codeField: codeField, messageField: messageField, successCodes: codes}
}

// decodeBody returns the JSON value of body, or a [models.RawPayload] when
// it is not JSON. Numbers are kept as json.Number so codes compare exactly.
func decodeBody(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return models.RawPayload(string(body))
	}
	return v
}

// classify turns a received response into a result.
func (c statusClassifier) classify(status int, payload any) models.RemoteCallResult {
	result := models.RemoteCallResult{HTTPStatus: &status, Payload: payload}

	obj, _ := payload.(map[string]any)

	if status >= http.StatusBadRequest {
		perr := &models.ProviderError{HTTPStatus: status, Message: c.message(obj)}
		if obj != nil {
			perr.Code, _ = c.code(obj)
		}
		if perr.Message == "" {
			perr.Message = rawMessage(payload, status)
		}
		result.Err = perr
		return result
	}

	if obj != nil {
		if code, ok := c.code(obj); ok {
			if _, success := c.successCodes[code]; !success {
				result.Err = &models.ProviderError{
					HTTPStatus: status,
					Code:       code,
					Message:    c.message(obj),
				}
				return result
			}
		}
	}

	result.Success = true
	return result
}

func (c statusClassifier) code(obj map[string]any) (string, bool) {
	v, ok := obj[c.codeField]
	if !ok || v == nil {
		return "", false
	}
	return scalarString(v), true
}

func (c statusClassifier) message(obj map[string]any) string {
	if obj == nil {
		return ""
	}
	for _, field := range []string{c.messageField, "message"} {
		if v, ok := obj[field]; ok && v != nil {
			return scalarString(v)
		}
	}
	return ""
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func rawMessage(payload any, status int) string {
	raw, ok := payload.(models.RawPayload)
	if !ok {
		return http.StatusText(status)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return http.StatusText(status)
	}
	if r := []rune(text); len(r) > maxRawMessage {
		return string(r[:maxRawMessage]) + "…"
	}
	return text
}
