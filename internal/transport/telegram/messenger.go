package telegram

import (
	"context"
	"os"
	"path/filepath"

	"github.com/docsignflow/docsign-bot/internal/shared/config"
	"github.com/docsignflow/docsign-bot/internal/shared/errors"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/oops"
)

// Messenger wraps the outbound bot calls the services need.
type Messenger struct {
	bot *bot.Bot
	cfg *config.Config
}

// NewMessenger creates a new messenger
func NewMessenger(b *bot.Bot, cfg *config.Config) *Messenger {
	return &Messenger{
		bot: b,
		cfg: cfg,
	}
}

// SendText sends a plain text message to a chat.
func (m *Messenger) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := m.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return oops.With("chat_id", chatID).Wrap(err)
	}
	return nil
}

// SendTemplate sends the configured template file to a chat as a document.
// Returns ErrTemplateNotFound when the file is not on disk.
func (m *Messenger) SendTemplate(ctx context.Context, chatID int64) error {
	f, err := os.Open(m.cfg.TemplatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.ErrTemplateNotFound
		}
		return oops.With("template_path", m.cfg.TemplatePath).Wrap(err)
	}
	defer f.Close()

	_, err = m.bot.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: filepath.Base(m.cfg.TemplatePath),
			Data:     f,
		},
	})
	if err != nil {
		return oops.With("chat_id", chatID, "template_path", m.cfg.TemplatePath).Wrap(err)
	}
	return nil
}
