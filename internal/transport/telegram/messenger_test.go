package telegram

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/docsignflow/docsign-bot/internal/shared/config"
	"github.com/docsignflow/docsign-bot/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessenger(t *testing.T) {
	t.Run("sends plain text to the chat", func(t *testing.T) {
		var gotChatID, gotText string
		mux := http.NewServeMux()
		mux.HandleFunc("/bot"+testToken+"/sendMessage", func(w http.ResponseWriter, r *http.Request) {
			gotChatID = r.FormValue("chat_id")
			gotText = r.FormValue("text")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1700000000,"chat":{"id":5,"type":"private"},"text":"Добрый день!"}}`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		m := NewMessenger(newTestBot(t, srv.URL), &config.Config{})

		err := m.SendText(context.Background(), 5, "Добрый день!")

		require.NoError(t, err)
		assert.Equal(t, "5", gotChatID)
		assert.Equal(t, "Добрый день!", gotText)
	})

	t.Run("surfaces send failures", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/bot"+testToken+"/sendMessage", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		m := NewMessenger(newTestBot(t, srv.URL), &config.Config{})

		err := m.SendText(context.Background(), 5, "Добрый день!")

		assert.Error(t, err)
	})

	t.Run("sends the template file as a document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dogovor_template.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 template"), 0o600))

		var gotChatID, gotFilename, gotDocument string
		mux := http.NewServeMux()
		mux.HandleFunc("/bot"+testToken+"/sendDocument", func(w http.ResponseWriter, r *http.Request) {
			gotChatID = r.FormValue("chat_id")
			if file, header, err := r.FormFile("document"); err == nil {
				data, _ := io.ReadAll(file)
				file.Close()
				gotFilename = header.Filename
				gotDocument = string(data)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ok":true,"result":{"message_id":2,"date":1700000000,"chat":{"id":5,"type":"private"},"document":{"file_id":"tpl-1","file_unique_id":"u-2"}}}`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		m := NewMessenger(newTestBot(t, srv.URL), &config.Config{TemplatePath: path})

		err := m.SendTemplate(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, "5", gotChatID)
		assert.Equal(t, "dogovor_template.pdf", gotFilename)
		assert.Equal(t, "%PDF-1.4 template", gotDocument)
	})

	t.Run("reports a missing template file", func(t *testing.T) {
		srv := httptest.NewServer(http.NewServeMux())
		defer srv.Close()

		m := NewMessenger(newTestBot(t, srv.URL), &config.Config{
			TemplatePath: filepath.Join(t.TempDir(), "missing.pdf"),
		})

		err := m.SendTemplate(context.Background(), 5)

		assert.ErrorIs(t, err, errors.ErrTemplateNotFound)
	})
}
