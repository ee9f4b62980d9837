package telegram

import (
	"html"
	"strings"

	"github.com/MKhiriev/proxy-desk-bot/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// render builds the outgoing message for a reply. Text is escaped and
// Code is shown as a preformatted block below it.
func render(chatID int64, reply models.Reply) tgbotapi.MessageConfig {
	var b strings.Builder
	b.WriteString(html.EscapeString(reply.Text))
	if reply.Code != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("<pre>")
		b.WriteString(html.EscapeString(reply.Code))
		b.WriteString("</pre>")
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if keyboard, ok := inlineKeyboard(reply.Keyboard); ok {
		msg.ReplyMarkup = keyboard
	}

	return msg
}

func inlineKeyboard(rows [][]models.Button) (tgbotapi.InlineKeyboardMarkup, bool) {
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		r := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			label := strings.TrimSpace(btn.Text)
			if label == "" {
				label = "•"
			}
			r = append(r, tgbotapi.NewInlineKeyboardButtonData(label, btn.Data))
		}
		kbRows = append(kbRows, r)
	}

	if len(kbRows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(kbRows...), true
}
