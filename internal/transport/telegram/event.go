package telegram

import (
	"strings"

	"github.com/docsignflow/docsign-bot/internal/modules/intake/domain"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"
)

// ParseMessage reduces a transport message to a tagged domain event. All
// probing of optional transport fields happens here; downstream code
// switches on the event kind.
func ParseMessage(msg *models.Message) domain.Event {
	ev := domain.Event{
		ChatID:  msg.Chat.ID,
		Caption: msg.Caption,
	}
	if msg.From != nil {
		ev.Sender = domain.Sender{
			ID:        msg.From.ID,
			Username:  msg.From.Username,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}
	}

	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "/"):
		ev.Kind = domain.EventKindCommand
		ev.Command = commandName(text)
		ev.Text = text
	case text != "":
		ev.Kind = domain.EventKindText
		ev.Text = text
	case msg.Document != nil:
		ev.Kind = domain.EventKindDocument
		ev.Document = &domain.DocumentRef{
			FileID:   msg.Document.FileID,
			FileName: msg.Document.FileName,
		}
	case len(msg.Photo) > 0:
		ev.Kind = domain.EventKindPhoto
		ev.Photo = lo.Map(msg.Photo, func(p models.PhotoSize, _ int) domain.PhotoVariant {
			return domain.PhotoVariant{
				FileID: p.FileID,
				Width:  p.Width,
				Height: p.Height,
			}
		})
	default:
		ev.Kind = domain.EventKindUnrecognized
	}

	return ev
}

// commandName extracts the lower-cased command out of text like
// "/Document@SomeBot arg", here "document".
func commandName(text string) string {
	name := strings.TrimPrefix(text, "/")
	if i := strings.IndexAny(name, " \t\n"); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}
