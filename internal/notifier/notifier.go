// Package notifier delivers alert messages to a Telegram chat. Delivery is
// fire-and-forget: failures are logged and never surfaced to the poll loop.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/telebot.v4"
)

// Notifier sends alert messages to one configured chat. A Notifier with no
// underlying bot is valid and silently drops every message.
type Notifier struct {
	bot  *telebot.Bot
	chat telebot.ChatID
	log  *slog.Logger
}

// New creates a Notifier for the given credentials. Empty credentials yield
// a disabled Notifier without error, so the poll loop can run regardless.
func New(log *slog.Logger, token string, chatID int64) (*Notifier, error) {
	if token == "" || chatID == 0 {
		log.Warn("Telegram credentials missing, notifications disabled")
		return Disabled(log), nil
	}

	bot, err := telebot.NewBot(telebot.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", bot.Me.Username)

	return &Notifier{bot: bot, chat: telebot.ChatID(chatID), log: log}, nil
}

// Disabled returns a Notifier that drops every message.
func Disabled(log *slog.Logger) *Notifier {
	return &Notifier{log: log}
}

// Enabled reports whether messages will actually be delivered.
func (n *Notifier) Enabled() bool {
	return n.bot != nil
}

// Notify sends one HTML-formatted message. Errors are logged, not returned:
// a lost notification must not affect the monitor state or later cycles.
func (n *Notifier) Notify(ctx context.Context, message string) {
	if n.bot == nil {
		return
	}

	if _, err := n.bot.Send(n.chat, message, telebot.ModeHTML); err != nil {
		n.log.WarnContext(ctx, "Failed to deliver notification", "error", err)
	}
}
