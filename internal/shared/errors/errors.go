package errors

import "errors"

var (
	ErrMissingBotToken         = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingDriveFolder      = errors.New("DRIVE_FOLDER_ID environment variable is required")
	ErrMissingDriveCredentials = errors.New("GOOGLE_SERVICE_ACCOUNT_JSON or the GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET/GOOGLE_REFRESH_TOKEN triple is required")
	ErrTemplateNotFound        = errors.New("document template file not found")
)
