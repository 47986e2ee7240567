package service

import (
	"context"
	"log/slog"
)

// Messenger sends text messages into a chat.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// Service delivers best-effort notifications to an optional admin chat.
type Service struct {
	messenger Messenger
	chatID    int64
}

// New creates a new notify service
func New(messenger Messenger, chatID int64) *Service {
	return &Service{
		messenger: messenger,
		chatID:    chatID,
	}
}

// Notify sends text to the admin chat. It is a no-op when no recipient is
// configured; delivery failures are logged and swallowed so they never fail
// the request that triggered them.
func (s *Service) Notify(ctx context.Context, text string) {
	if s.chatID == 0 {
		return
	}

	if err := s.messenger.SendText(ctx, s.chatID, text); err != nil {
		slog.Warn("Failed to deliver admin notification", "chat_id", s.chatID, "error", err)
	}
}
