package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("imagens", "foto do time.png")

	assert.True(t, strings.HasPrefix(key, "imagens/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotContains(t, key, " ")

	// keys for the same filename must not collide
	assert.NotEqual(t, key, ObjectKey("imagens", "foto do time.png"))
}

func TestStorageUpload(t *testing.T) {
	t.Run("uploads and returns the public URL", func(t *testing.T) {
		var gotPath, gotAPIKey, gotContentType string
		var gotBody []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAPIKey = r.Header.Get("apikey")
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc := NewStorageService(server.URL, "service-key", server.Client())
		url, err := svc.Upload("arquivos", "quests/regulamento.pdf", "application/pdf", []byte("%PDF-1.4"))

		require.NoError(t, err)
		assert.Equal(t, "/storage/v1/object/arquivos/quests/regulamento.pdf", gotPath)
		assert.Equal(t, "service-key", gotAPIKey)
		assert.Equal(t, "application/pdf", gotContentType)
		assert.Equal(t, []byte("%PDF-1.4"), gotBody)
		assert.Equal(t, server.URL+"/storage/v1/object/public/arquivos/quests/regulamento.pdf", url)
	})

	t.Run("provider error status fails the upload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		svc := NewStorageService(server.URL, "service-key", server.Client())
		_, err := svc.Upload("arquivos", "a.pdf", "application/pdf", []byte("x"))

		assert.Error(t, err)
	})

	t.Run("unconfigured provider is rejected", func(t *testing.T) {
		svc := NewStorageService("", "", nil)
		_, err := svc.Upload("arquivos", "a.pdf", "application/pdf", []byte("x"))
		assert.Error(t, err)
	})
}
