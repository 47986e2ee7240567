package di

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/samber/do/v2"
	"github.com/samber/oops"

	intakeService "github.com/docsignflow/docsign-bot/internal/modules/intake/service"
	notifyService "github.com/docsignflow/docsign-bot/internal/modules/notify/service"
	storageService "github.com/docsignflow/docsign-bot/internal/modules/storage/service"
	"github.com/docsignflow/docsign-bot/internal/shared/config"
	httpServer "github.com/docsignflow/docsign-bot/internal/transport/http"
	"github.com/docsignflow/docsign-bot/internal/transport/telegram"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Storage Service
	do.Provide(injector, func(i do.Injector) (*storageService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return storageService.New(cfg), nil
	})

	// Register Bot
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)

		// The bot serves webhook pushes only, so skip the getMe roundtrip
		// and keep startup free of network calls.
		opts := []bot.Option{
			bot.WithSkipGetMe(),
		}
		if cfg.TelegramAPIURL != "" {
			opts = append(opts, bot.WithServerURL(cfg.TelegramAPIURL))
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		return b, nil
	})

	// Register Messenger
	do.Provide(injector, func(i do.Injector) (*telegram.Messenger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		b := do.MustInvoke[*bot.Bot](i)
		return telegram.NewMessenger(b, cfg), nil
	})

	// Register File Service
	do.Provide(injector, func(i do.Injector) (*telegram.FileService, error) {
		b := do.MustInvoke[*bot.Bot](i)
		return telegram.NewFileService(b), nil
	})

	// Register Notify Service
	do.Provide(injector, func(i do.Injector) (*notifyService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		messenger := do.MustInvoke[*telegram.Messenger](i)
		return notifyService.New(messenger, cfg.NotifyChatID), nil
	})

	// Register Intake Service
	do.Provide(injector, func(i do.Injector) (*intakeService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		files := do.MustInvoke[*telegram.FileService](i)
		storage := do.MustInvoke[*storageService.Service](i)
		notifier := do.MustInvoke[*notifyService.Service](i)
		return intakeService.New(cfg, files, storage, notifier), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegram.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		messenger := do.MustInvoke[*telegram.Messenger](i)
		intake := do.MustInvoke[*intakeService.Service](i)
		return telegram.New(cfg, messenger, intake), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := do.MustInvoke[*telegram.Handler](i)
		server := httpServer.New(cfg, handler)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	// Shutdown bot if it exists
	if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
		b.Close(ctx)
	}

	return nil
}
