package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/proxy-desk-bot/internal/app"
	"github.com/MKhiriev/proxy-desk-bot/internal/crypto"
	"github.com/MKhiriev/proxy-desk-bot/internal/validators"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

// MaxMessageLength is the Telegram limit on the visible text of one message.
const MaxMessageLength = 4096

// errorText converts any error reaching the dispatcher into the message a
// user sees.
func errorText(err error) string {
	var (
		formatErr   *validators.FormatError
		providerErr *models.ProviderError
	)

	switch {
	case errors.As(err, &formatErr):
		return fmt.Sprintf("%s: %s.\nExpected: %s", app.MsgInvalidInput, formatErr.Reason, formatErr.Expected)
	case errors.Is(err, crypto.ErrIntegrity):
		return app.MsgCredentialUnreadable
	case errors.Is(err, ErrNotConnected):
		return app.MsgConnectFirst
	case errors.Is(err, models.ErrTransport):
		return app.MsgProviderUnreachable
	case errors.As(err, &providerErr):
		return fmt.Sprintf("%s: %s", app.MsgProviderRejected, providerErr.Error())
	case errors.Is(err, models.ErrProvider):
		return app.MsgProviderRejected + "."
	case errors.Is(err, models.ErrUnknownOperation):
		return app.MsgOperationNotConfigured
	default:
		return app.MsgInternalError
	}
}

// resultReply renders a provider call. Successful payloads and the payloads
// of provider errors are shown as pretty JSON.
func resultReply(op models.Operation, result models.RemoteCallResult, keyboard [][]models.Button) models.Reply {
	reply := models.Reply{Keyboard: keyboard}
	if result.Success {
		reply.Text = "✅ " + app.OperationTitle(op)
	} else {
		reply.Text = "⚠️ " + errorText(result.Err)
	}

	if result.Success || errors.Is(result.Err, models.ErrProvider) {
		reply.Code = prettyPayload(result.Payload)
	}

	return fitReply(reply)
}

func prettyPayload(payload any) string {
	switch p := payload.(type) {
	case nil:
		return ""
	case models.RawPayload:
		return string(p)
	case string:
		return p
	}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Sprint(payload)
	}
	return string(b)
}

// fitReply cuts Code, and then Text, so that both together with the blank
// line between them fit into one Telegram message.
func fitReply(r models.Reply) models.Reply {
	textLen := utf8.RuneCountInString(r.Text)
	codeLen := utf8.RuneCountInString(r.Code)

	if textLen > MaxMessageLength {
		r.Text = truncateRunes(r.Text, MaxMessageLength-utf8.RuneCountInString(app.MsgTruncated)) + app.MsgTruncated
		r.Code = ""
		return r
	}

	if r.Code == "" {
		return r
	}

	room := MaxMessageLength - textLen - 2
	if codeLen <= room {
		return r
	}

	room -= utf8.RuneCountInString(app.MsgTruncated) + 1
	if room <= 0 {
		r.Code = ""
		return r
	}
	r.Code = truncateRunes(r.Code, room) + "\n" + app.MsgTruncated
	return r
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func promptReply(text string) models.Reply {
	return models.Reply{Text: text + app.MsgPromptCancelSuffix}
}

func textReply(text string, keyboard [][]models.Button) models.Reply {
	return fitReply(models.Reply{Text: text, Keyboard: keyboard})
}
