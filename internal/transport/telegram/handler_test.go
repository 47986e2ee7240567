package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/docsignflow/docsign-bot/internal/modules/intake/domain"
	intakeService "github.com/docsignflow/docsign-bot/internal/modules/intake/service"
	"github.com/docsignflow/docsign-bot/internal/shared/config"
	sharedErrors "github.com/docsignflow/docsign-bot/internal/shared/errors"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReplier struct {
	texts       []string
	to          []int64
	templates   []int64
	templateErr error
}

func (f *fakeReplier) SendText(_ context.Context, chatID int64, text string) error {
	f.to = append(f.to, chatID)
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeReplier) SendTemplate(_ context.Context, chatID int64) error {
	f.templates = append(f.templates, chatID)
	return f.templateErr
}

type fakeIntaker struct {
	events []domain.Event
	res    intakeService.Result
	err    error
}

func (f *fakeIntaker) Process(_ context.Context, ev domain.Event) (intakeService.Result, error) {
	f.events = append(f.events, ev)
	return f.res, f.err
}

func newTestHandler(intaker *fakeIntaker) (*Handler, *fakeReplier) {
	replier := &fakeReplier{}
	cfg := &config.Config{DocumentSuffix: "dogovor"}
	return New(cfg, replier, intaker), replier
}

func textUpdate(text string) *models.Update {
	return &models.Update{
		ID: 1,
		Message: &models.Message{
			Chat: models.Chat{ID: 5},
			Text: text,
		},
	}
}

func documentUpdate(caption string) *models.Update {
	return &models.Update{
		ID: 1,
		Message: &models.Message{
			Chat:     models.Chat{ID: 5},
			Caption:  caption,
			Document: &models.Document{FileID: "doc-1", FileName: "report.pdf"},
		},
	}
}

func TestHandleUpdateCommands(t *testing.T) {
	t.Run("start sends the welcome", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})

		h.HandleUpdate(context.Background(), textUpdate("/start"))

		require.Len(t, replier.texts, 1)
		assert.Contains(t, replier.texts[0], "Привет")
		assert.Contains(t, replier.texts[0], "ИМЯ_dogovor.pdf")
		assert.Equal(t, []int64{5}, replier.to)
	})

	t.Run("document sends the intro and the template", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})

		h.HandleUpdate(context.Background(), textUpdate("/document"))

		require.Len(t, replier.texts, 1)
		assert.Contains(t, replier.texts[0], "Отправляю шаблон")
		assert.Equal(t, []int64{5}, replier.templates)
	})

	t.Run("doc is an alias for document", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})

		h.HandleUpdate(context.Background(), textUpdate("/doc"))

		assert.Equal(t, []int64{5}, replier.templates)
	})

	t.Run("a missing template turns into an apology", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})
		replier.templateErr = sharedErrors.ErrTemplateNotFound

		h.HandleUpdate(context.Background(), textUpdate("/document"))

		require.Len(t, replier.texts, 2)
		assert.Contains(t, replier.texts[1], "шаблон документа пока не настроен")
	})

	t.Run("a failed template delivery gets no apology", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})
		replier.templateErr = errors.New("telegram: sendDocument timed out")

		h.HandleUpdate(context.Background(), textUpdate("/document"))

		require.Len(t, replier.texts, 1)
		assert.Contains(t, replier.texts[0], "Отправляю шаблон")
	})

	t.Run("unknown commands get the usage help", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})

		h.HandleUpdate(context.Background(), textUpdate("/help"))

		require.Len(t, replier.texts, 1)
		assert.Contains(t, replier.texts[0], "/document")
	})
}

func TestHandleUpdateText(t *testing.T) {
	t.Run("free text gets the usage help", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})

		h.HandleUpdate(context.Background(), textUpdate("добрый день"))

		require.Len(t, replier.texts, 1)
		assert.Contains(t, replier.texts[0], "Чтобы получить шаблон документа")
	})
}

func TestHandleUpdateFiles(t *testing.T) {
	t.Run("stored outcome sends exactly one success reply", func(t *testing.T) {
		intaker := &fakeIntaker{res: intakeService.Result{
			Outcome:     domain.IntakeOutcomeStored,
			StorageName: "Мария_dogovor.pdf",
		}}
		h, replier := newTestHandler(intaker)

		h.HandleUpdate(context.Background(), documentUpdate("Мария"))

		require.Len(t, intaker.events, 1)
		assert.Equal(t, domain.EventKindDocument, intaker.events[0].Kind)
		assert.Equal(t, []string{successText}, replier.texts)
	})

	t.Run("missing caption asks to resend", func(t *testing.T) {
		intaker := &fakeIntaker{res: intakeService.Result{
			Outcome: domain.IntakeOutcomeMissingCaption,
		}}
		h, replier := newTestHandler(intaker)

		h.HandleUpdate(context.Background(), documentUpdate(""))

		require.Len(t, replier.texts, 1)
		assert.Contains(t, replier.texts[0], "не вижу вашего имени")
		assert.Contains(t, replier.texts[0], "ИМЯ_dogovor.*")
	})

	t.Run("rejected type explains the policy", func(t *testing.T) {
		intaker := &fakeIntaker{res: intakeService.Result{
			Outcome: domain.IntakeOutcomeRejectedType,
		}}
		h, replier := newTestHandler(intaker)

		h.HandleUpdate(context.Background(), documentUpdate("Мария"))

		assert.Equal(t, []string{rejectedTypeText}, replier.texts)
	})

	t.Run("intake errors send exactly one failure reply", func(t *testing.T) {
		intaker := &fakeIntaker{err: errors.New("drive: 503")}
		h, replier := newTestHandler(intaker)

		h.HandleUpdate(context.Background(), documentUpdate("Мария"))

		assert.Equal(t, []string{failureText}, replier.texts)
	})
}

func TestHandleUpdateEdges(t *testing.T) {
	t.Run("updates without a message are ignored", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})

		h.HandleUpdate(context.Background(), &models.Update{ID: 1})

		assert.Empty(t, replier.texts)
		assert.Empty(t, replier.templates)
	})

	t.Run("unrecognized messages get the short help", func(t *testing.T) {
		h, replier := newTestHandler(&fakeIntaker{})

		h.HandleUpdate(context.Background(), &models.Update{
			ID:      1,
			Message: &models.Message{Chat: models.Chat{ID: 5}},
		})

		assert.Equal(t, []string{unknownText}, replier.texts)
	})
}
