package telegram

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/oops"
)

// FileService fetches attachment bytes through the transport's two-step
// flow: resolve the opaque file id to a transient path, then download the
// bytes behind that path.
type FileService struct {
	bot    *bot.Bot
	client *http.Client
}

// NewFileService creates a new file service
func NewFileService(b *bot.Bot) *FileService {
	return &FileService{
		bot: b,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ResolvePath exchanges a file id for the transient download path.
func (f *FileService) ResolvePath(ctx context.Context, fileID string) (string, error) {
	file, err := f.bot.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", oops.With("file_id", fileID, "context", "failed to resolve file path").Wrap(err)
	}
	if file.FilePath == "" {
		return "", oops.With("file_id", fileID).Errorf("telegram returned an empty file path")
	}
	return file.FilePath, nil
}

// Fetch downloads the bytes behind a transient path.
func (f *FileService) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := f.bot.FileDownloadLink(&models.File{FilePath: path})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, oops.With("file_path", path).Wrap(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, oops.With("file_path", path).Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, oops.With("file_path", path).Errorf("file download failed with status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
