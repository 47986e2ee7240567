package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docsignflow/docsign-bot/internal/modules/intake/domain"
	"github.com/docsignflow/docsign-bot/internal/shared/config"
	"github.com/samber/oops"
)

// Downloader resolves and fetches attachment bytes from the chat transport.
type Downloader interface {
	ResolvePath(ctx context.Context, fileID string) (string, error)
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Uploader stores a named byte payload in the storage backend.
type Uploader interface {
	Store(ctx context.Context, name string, content []byte) (string, error)
}

// Notifier tells the administrator about accepted documents, best-effort.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// Result describes how an intake attempt ended.
type Result struct {
	Outcome     domain.IntakeOutcome
	StorageName string
	StoredID    string
}

// Service handles file intake business logic
type Service struct {
	cfg      *config.Config
	files    Downloader
	storage  Uploader
	notifier Notifier
}

// New creates a new intake service
func New(cfg *config.Config, files Downloader, storage Uploader, notifier Notifier) *Service {
	return &Service{
		cfg:      cfg,
		files:    files,
		storage:  storage,
		notifier: notifier,
	}
}

// Process runs the intake sequence for an event carrying an attachment:
// caption requirement, extension resolution, type policy, download, upload,
// admin notification. Validation failures come back as outcomes, transport
// and storage failures as errors.
func (s *Service) Process(ctx context.Context, ev domain.Event) (Result, error) {
	caption := strings.TrimSpace(ev.Caption)
	if caption == "" {
		return Result{Outcome: domain.IntakeOutcomeMissingCaption}, nil
	}

	var fileID, ext, path string

	switch ev.Kind {
	case domain.EventKindPhoto:
		// Photos are refused under the PDF-only policy before any transport call.
		if s.cfg.AcceptPDFOnly {
			return Result{Outcome: domain.IntakeOutcomeRejectedType}, nil
		}
		variant, ok := ev.LargestPhoto()
		if !ok {
			return Result{}, oops.With("chat_id", ev.ChatID).Errorf("photo event without variants")
		}
		fileID = variant.FileID
		ext = domain.PhotoExtension

	case domain.EventKindDocument:
		if ev.Document == nil {
			return Result{}, oops.With("chat_id", ev.ChatID).Errorf("document event without a file reference")
		}
		fileID = ev.Document.FileID
		ext = domain.ExtensionFromName(ev.Document.FileName)
		if ext == "" {
			p, err := s.files.ResolvePath(ctx, fileID)
			if err != nil {
				return Result{}, err
			}
			path = p
			ext = domain.ExtensionFromName(p)
			if ext == "" {
				ext = domain.DefaultExtension
			}
		}

	default:
		return Result{}, oops.With("kind", ev.Kind).Errorf("event carries no attachment")
	}

	if s.cfg.AcceptPDFOnly && !strings.EqualFold(ext, domain.PDFExtension) {
		return Result{Outcome: domain.IntakeOutcomeRejectedType}, nil
	}

	name := domain.ComposeStorageName(caption, s.cfg.DocumentSuffix, ext)

	if path == "" {
		p, err := s.files.ResolvePath(ctx, fileID)
		if err != nil {
			return Result{}, err
		}
		path = p
	}

	content, err := s.files.Fetch(ctx, path)
	if err != nil {
		return Result{}, err
	}

	storedID, err := s.storage.Store(ctx, name, content)
	if err != nil {
		return Result{}, err
	}

	slog.Info("Signed document stored", "name", name, "drive_id", storedID, "chat_id", ev.ChatID)
	s.notifier.Notify(ctx, notificationText(caption, ev.Sender.DisplayToken(), name))

	return Result{Outcome: domain.IntakeOutcomeStored, StorageName: name, StoredID: storedID}, nil
}

func notificationText(caption, sender, name string) string {
	return fmt.Sprintf("Получен подписанный документ.\nИмя из подписи: %s\nОтправитель: %s\nСохранён как: %s", caption, sender, name)
}
