package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galeria-yaya/gallery-api/log"
)

func TestMain(m *testing.M) {
	if err := log.Initialize("ERROR", false); err != nil {
		panic(fmt.Errorf("fail to initialize logger with error: %s", err.Error()))
	}
	os.Exit(m.Run())
}

func newTestCloudflareStore(t *testing.T, handler http.Handler) *CloudflareStore {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := NewCloudflareStore(CloudflareConfig{
		AccountID:   "account01",
		AccountHash: "hash01",
		APIToken:    "token01",
		Folder:      "galeria-yaya",
		BaseURL:     server.URL,
	})
	assert.NoError(t, err)

	return store
}

func TestCloudflareStoreUpload(t *testing.T) {
	var uploadedContent []byte
	var uploadedMetadata map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/account01/images/v1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseMultipartForm(32<<20))

		file, _, err := r.FormFile("file")
		assert.NoError(t, err)
		uploadedContent, err = io.ReadAll(file)
		assert.NoError(t, err)

		assert.NoError(t, json.Unmarshal([]byte(r.FormValue("metadata")), &uploadedMetadata))

		fmt.Fprint(w, `{"result":{"id":"img01","filename":"galeria-yaya/photo.png"},"success":true,"errors":[],"messages":[]}`)
	})

	store := newTestCloudflareStore(t, mux)

	locator, externalID, err := store.Store(context.Background(), bytes.NewReader([]byte("fake png")), "photo.png", "image/png")
	assert.NoError(t, err)
	assert.Equal(t, "img01", externalID)
	assert.Equal(t, "https://imagedelivery.net/hash01/img01/public", locator)
	assert.Equal(t, []byte("fake png"), uploadedContent)
	assert.Equal(t, "photo.png", uploadedMetadata["filename"])
	assert.Equal(t, "image/png", uploadedMetadata["mime_type"])
}

func TestCloudflareStoreUploadError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/account01/images/v1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"result":null,"success":false,"errors":[{"code":10000,"message":"Authentication error"}],"messages":[]}`)
	})

	store := newTestCloudflareStore(t, mux)

	_, _, err := store.Store(context.Background(), bytes.NewReader([]byte("x")), "photo.png", "image/png")
	assert.Error(t, err)
}

func TestCloudflareStoreDelete(t *testing.T) {
	deleted := false

	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/account01/images/v1/img01", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		deleted = true
		fmt.Fprint(w, `{"result":{},"success":true,"errors":[],"messages":[]}`)
	})

	store := newTestCloudflareStore(t, mux)

	err := store.Delete(context.Background(), "https://imagedelivery.net/hash01/img01/public", "img01")
	assert.NoError(t, err)
	assert.True(t, deleted)
}

func TestCloudflareConfigEnabled(t *testing.T) {
	assert.True(t, CloudflareConfig{AccountID: "a", AccountHash: "h", APIToken: "t"}.Enabled())
	assert.False(t, CloudflareConfig{AccountID: "a", AccountHash: "h"}.Enabled())
	assert.False(t, CloudflareConfig{AccountHash: "h", APIToken: "t"}.Enabled())
	assert.False(t, CloudflareConfig{}.Enabled())
}
