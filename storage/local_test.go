package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStoreWritesFile(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static/uploads")

	locator, externalID, err := store.Store(context.Background(), bytes.NewReader([]byte("content")), "photo.png", "image/png")
	assert.NoError(t, err)
	assert.Equal(t, "/static/uploads/photo.png", locator)
	assert.Empty(t, externalID)

	content, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("content"), content)
}

func TestLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewLocalStore(dir, "/static/uploads")

	_, _, err := store.Store(context.Background(), bytes.NewReader([]byte("x")), "a.png", "image/png")
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "a.png"))
	assert.NoError(t, err)
}

func TestLocalStoreOverwritesSameName(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static/uploads")

	_, _, err := store.Store(context.Background(), bytes.NewReader([]byte("first")), "a.png", "image/png")
	assert.NoError(t, err)
	_, _, err = store.Store(context.Background(), bytes.NewReader([]byte("second")), "a.png", "image/png")
	assert.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "a.png"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), content)
}

func TestLocalStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static/uploads")

	locator, _, err := store.Store(context.Background(), bytes.NewReader([]byte("x")), "a.png", "image/png")
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), locator, ""))

	_, err = os.Stat(filepath.Join(dir, "a.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreDeleteMissingFile(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/static/uploads")

	assert.NoError(t, store.Delete(context.Background(), "/static/uploads/gone.png", ""))
}
