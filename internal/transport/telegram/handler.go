package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/docsignflow/docsign-bot/internal/modules/intake/domain"
	intakeService "github.com/docsignflow/docsign-bot/internal/modules/intake/service"
	"github.com/docsignflow/docsign-bot/internal/shared/config"
	sharedErrors "github.com/docsignflow/docsign-bot/internal/shared/errors"
	"github.com/go-telegram/bot/models"
)

// Replier is the outbound messaging surface the dispatcher needs.
type Replier interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendTemplate(ctx context.Context, chatID int64) error
}

// Intaker runs the file intake sequence.
type Intaker interface {
	Process(ctx context.Context, ev domain.Event) (intakeService.Result, error)
}

// Handler dispatches inbound Telegram updates
type Handler struct {
	cfg       *config.Config
	messenger Replier
	intake    Intaker
}

// New creates a new Telegram handler
func New(cfg *config.Config, messenger Replier, intake Intaker) *Handler {
	return &Handler{
		cfg:       cfg,
		messenger: messenger,
		intake:    intake,
	}
}

// HandleUpdate routes one inbound update: recognized commands to their
// handlers, attachments to the file intake flow, any other text to the
// usage help. Updates without a message body are ignored.
func (h *Handler) HandleUpdate(ctx context.Context, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}

	ev := ParseMessage(update.Message)
	slog.Info("Incoming update", "kind", ev.Kind, "chat_id", ev.ChatID)

	switch ev.Kind {
	case domain.EventKindCommand:
		h.handleCommand(ctx, ev)
	case domain.EventKindText:
		h.reply(ctx, ev.ChatID, helpText)
	case domain.EventKindDocument, domain.EventKindPhoto:
		h.handleFile(ctx, ev)
	default:
		h.reply(ctx, ev.ChatID, unknownText)
	}
}

func (h *Handler) handleCommand(ctx context.Context, ev domain.Event) {
	switch ev.Command {
	case "start":
		h.reply(ctx, ev.ChatID, startText(h.cfg.DocumentSuffix))
	case "document", "doc":
		h.handleSendTemplate(ctx, ev)
	default:
		h.reply(ctx, ev.ChatID, helpText)
	}
}

// handleSendTemplate introduces the template and sends the file. The apology
// goes out only when no template file is configured; other send failures are
// logged and not surfaced to the user.
func (h *Handler) handleSendTemplate(ctx context.Context, ev domain.Event) {
	h.reply(ctx, ev.ChatID, templateIntroText)

	if err := h.messenger.SendTemplate(ctx, ev.ChatID); err != nil {
		if errors.Is(err, sharedErrors.ErrTemplateNotFound) {
			slog.Warn("Document template is not configured", "template_path", h.cfg.TemplatePath, "chat_id", ev.ChatID)
			h.reply(ctx, ev.ChatID, templateMissingText)
			return
		}
		slog.Error("Failed to send template", "error", err, "chat_id", ev.ChatID)
	}
}

func (h *Handler) handleFile(ctx context.Context, ev domain.Event) {
	res, err := h.intake.Process(ctx, ev)
	if err != nil {
		slog.Error("Failed to process incoming file", "error", err, "chat_id", ev.ChatID)
		h.reply(ctx, ev.ChatID, failureText)
		return
	}

	switch res.Outcome {
	case domain.IntakeOutcomeStored:
		h.reply(ctx, ev.ChatID, successText)
	case domain.IntakeOutcomeMissingCaption:
		h.reply(ctx, ev.ChatID, missingCaptionText(h.cfg.DocumentSuffix))
	case domain.IntakeOutcomeRejectedType:
		h.reply(ctx, ev.ChatID, rejectedTypeText)
	}
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	if err := h.messenger.SendText(ctx, chatID, text); err != nil {
		slog.Error("Failed to send reply", "error", err, "chat_id", chatID)
	}
}

const (
	helpText = "Чтобы получить шаблон документа, отправьте /document.\n" +
		"Чтобы отправить подписанный документ, пришлите его как файл (PDF/фото) и укажите ваше имя в подписи."

	unknownText = "Я понимаю только команды /start, /document и файлы (документы/фото)."

	templateIntroText = "Отправляю шаблон документа.\n" +
		"После подписи пришлите его мне обратно файлом.\n\n" +
		"Не забудьте указать ваше имя и фамилию в подписи к файлу."

	templateMissingText = "Извините, шаблон документа пока не настроен на стороне сервера."

	successText = "Спасибо! Файл принят и сохранён."

	failureText = "Произошла ошибка при сохранении файла. Попробуйте, пожалуйста, позже."

	rejectedTypeText = "Я принимаю только документы в формате PDF.\n" +
		"Пожалуйста, отправьте подписанный документ файлом в формате PDF."
)

func startText(suffix string) string {
	return fmt.Sprintf(`Привет! Я бот для отправки и приёма подписанных документов.

1. Я пришлю вам шаблон документа.
2. Вы скачаете его, подпишете (на бумаге или электронно).
3. Потом отправите мне обратно подписанный документ.

ВАЖНО:
Когда будете отправлять подписанный файл, ОБЯЗАТЕЛЬНО напишите в подписи к файлу ваше имя и фамилию (например: «Иван Иванов»).
Я сохраню файл на Google Диске под именем ИМЯ_%s.pdf (или с другим расширением, если у файла не PDF).`, suffix)
}

func missingCaptionText(suffix string) string {
	return fmt.Sprintf(`Я получил файл, но не вижу вашего имени в подписи.

Пожалуйста, отправьте файл ещё раз и в подписи к файлу укажите ваше имя и фамилию, например: «Иван Иванов».
Тогда я сохраню файл как ИМЯ_%s.* на Google Диске.`, suffix)
}
