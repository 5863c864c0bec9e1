// services/storage.go - Object storage client (Supabase-style REST API)
package services

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/google/uuid"
)

// StorageService uploads files to the storage provider over its REST API and
// resolves their public URLs. Uploads exist so the application can proxy
// files around the provider's client-side permission restrictions.
type StorageService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewStorageService builds a storage client. A nil http client falls back to
// a default with an upload-sized timeout.
func NewStorageService(baseURL, apiKey string, client *http.Client) *StorageService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &StorageService{baseURL: baseURL, apiKey: apiKey, client: client}
}

// NewStorageServiceFromEnv reads STORAGE_URL / STORAGE_API_KEY
func NewStorageServiceFromEnv() *StorageService {
	return NewStorageService(os.Getenv("STORAGE_URL"), os.Getenv("STORAGE_API_KEY"), nil)
}

// ObjectKey builds a collision-free storage key preserving the original
// file extension.
func ObjectKey(prefix, filename string) string {
	ext := path.Ext(filename)
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}

// Upload stores the file bytes under bucket/key and returns the public URL
func (s *StorageService) Upload(bucket, key, contentType string, data []byte) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("storage provider not configured")
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, bucket, key)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("storage upload returned status %d", resp.StatusCode)
	}

	return s.PublicURL(bucket, key), nil
}

// PublicURL resolves the public address of a stored object
func (s *StorageService) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, bucket, key)
}
