package service

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"github.com/docsignflow/docsign-bot/internal/shared/config"
	"github.com/docsignflow/docsign-bot/internal/shared/errors"
	"github.com/samber/oops"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Service uploads files into a configured Google Drive folder. The Drive
// client is built lazily on first use and kept for the life of the process;
// a failed build is retried on the next call.
type Service struct {
	cfg *config.Config

	mu    sync.Mutex
	drive *drive.Service
}

// New creates a new storage service
func New(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

// Store uploads content under the given name into the configured folder and
// returns the created object id. The upload is a single non-resumable
// request; failures propagate to the caller without retries.
func (s *Service) Store(ctx context.Context, name string, content []byte) (string, error) {
	if s.cfg.DriveFolderID == "" {
		return "", errors.ErrMissingDriveFolder
	}

	svc, err := s.client()
	if err != nil {
		return "", err
	}

	meta := &drive.File{
		Name:    name,
		Parents: []string{s.cfg.DriveFolderID},
	}

	created, err := svc.Files.Create(meta).
		Media(bytes.NewReader(content), googleapi.ContentType("application/octet-stream"), googleapi.ChunkSize(0)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", oops.With("name", name, "folder_id", s.cfg.DriveFolderID, "context", "failed to upload file to drive").Wrap(err)
	}

	slog.Info("Uploaded file to Drive", "name", name, "drive_id", created.Id, "size", len(content))
	return created.Id, nil
}

// client returns the memoized Drive client, building it on first use. The
// client and its token source outlive the request that triggered the build,
// so both are constructed on a background context; the request context
// passed to Store scopes individual calls only.
func (s *Service) client() (*drive.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drive != nil {
		return s.drive, nil
	}

	ctx := context.Background()

	ts, err := s.tokenSource(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, oops.With("context", "failed to create drive client").Wrap(err)
	}

	s.drive = svc
	return svc, nil
}

// tokenSource picks the credential material: a service-account JSON blob
// when configured, else the OAuth client/secret/refresh-token triple. The
// returned source keeps ctx for later token refreshes, so it must be a
// process-lifetime context rather than a request one.
func (s *Service) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	switch {
	case s.cfg.GoogleServiceAccountJSON != "":
		jwtCfg, err := google.JWTConfigFromJSON([]byte(s.cfg.GoogleServiceAccountJSON), drive.DriveFileScope)
		if err != nil {
			return nil, oops.With("context", "failed to parse service account JSON").Wrap(err)
		}
		return jwtCfg.TokenSource(ctx), nil

	case s.cfg.GoogleClientID != "" && s.cfg.GoogleClientSecret != "" && s.cfg.GoogleRefreshToken != "":
		conf := &oauth2.Config{
			ClientID:     s.cfg.GoogleClientID,
			ClientSecret: s.cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{drive.DriveFileScope},
		}
		token := &oauth2.Token{RefreshToken: s.cfg.GoogleRefreshToken}
		return conf.TokenSource(ctx, token), nil

	default:
		return nil, errors.ErrMissingDriveCredentials
	}
}
