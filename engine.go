package gallery

import (
	"bytes"
	"context"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/galeria-yaya/gallery-api/log"
	"github.com/galeria-yaya/gallery-api/storage"
)

// GalleryEngine wires the metadata store to the blob backends and carries the
// upload, list and delete flows.
type GalleryEngine struct {
	store  GalleryStore
	remote storage.BlobStore
	local  storage.BlobStore
}

// New creates a gallery engine. remote is nil when the media host is not
// configured; local is always present and doubles as the fallback target.
func New(
	store GalleryStore,
	remote storage.BlobStore,
	local storage.BlobStore,
) *GalleryEngine {
	return &GalleryEngine{
		store:  store,
		remote: remote,
		local:  local,
	}
}

// UploadImage validates and stores one uploaded file together with its
// metadata row. The blob goes to the media host when one is configured,
// falling back to local disk once if the host rejects the write. The row is
// created only after the blob landed in exactly one backend.
func (e *GalleryEngine) UploadImage(ctx context.Context, file io.Reader, declaredFilename, title, description string) (*Image, error) {
	if declaredFilename == "" {
		return nil, &ValidationError{Reason: "no file selected"}
	}

	if !AllowedFile(declaredFilename) {
		return nil, &ValidationError{Reason: "file type not allowed"}
	}

	filename := SecureFilename(declaredFilename)

	// buffered so the fallback write starts from a fresh reader after a
	// partially consumed remote attempt
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	mimeType := mimetype.Detect(data).String()

	locator, externalID, err := e.storeBlob(ctx, data, filename, mimeType)
	if err != nil {
		return nil, err
	}

	image := &Image{
		Filename:    filename,
		Filepath:    locator,
		ExternalID:  externalID,
		Title:       title,
		Description: description,
	}

	if err := e.store.CreateImage(ctx, image); err != nil {
		e.discardBlob(ctx, locator, externalID)
		return nil, err
	}

	return image, nil
}

// ListImages returns every stored entry, most recent upload first.
func (e *GalleryEngine) ListImages(ctx context.Context) ([]Image, error) {
	return e.store.ListImages(ctx)
}

// DeleteImage removes the blob behind an entry and then the row itself. Blob
// cleanup is best effort: a failed remote delete or an already-missing local
// file is logged and must not keep the row alive.
func (e *GalleryEngine) DeleteImage(ctx context.Context, id int64) error {
	image, err := e.store.GetImage(ctx, id)
	if err != nil {
		return err
	}

	if image.IsRemote() {
		if e.remote == nil {
			log.Warn("entry points at the media host but no host is configured, skipping blob cleanup",
				zap.Int64("id", id), zap.String("externalID", image.ExternalID))
		} else if err := e.remote.Delete(ctx, image.Filepath, image.ExternalID); err != nil {
			log.Warn("fail to delete remote blob", log.StorageRemote,
				zap.Int64("id", id), zap.String("externalID", image.ExternalID), zap.Error(err))
		}
	} else if err := e.local.Delete(ctx, image.Filepath, ""); err != nil {
		log.Warn("fail to delete local file", log.StorageLocal,
			zap.Int64("id", id), zap.String("filepath", image.Filepath), zap.Error(err))
	}

	return e.store.DeleteImage(ctx, id)
}

// storeBlob writes the buffered upload into the first backend that accepts
// it, remote before local.
func (e *GalleryEngine) storeBlob(ctx context.Context, data []byte, filename, mimeType string) (string, string, error) {
	if e.remote != nil {
		locator, externalID, err := e.remote.Store(ctx, bytes.NewReader(data), filename, mimeType)
		if err == nil {
			return locator, externalID, nil
		}

		log.Warn("remote store failed, falling back to local storage", log.StorageRemote,
			zap.String("filename", filename), zap.Error(err))
	}

	locator, _, err := e.local.Store(ctx, bytes.NewReader(data), filename, mimeType)
	if err != nil {
		return "", "", &StorageError{Err: err}
	}

	return locator, "", nil
}

// discardBlob drops a blob whose metadata row never made it into the store.
func (e *GalleryEngine) discardBlob(ctx context.Context, locator, externalID string) {
	backend := e.local
	source := log.StorageLocal
	if externalID != "" {
		backend = e.remote
		source = log.StorageRemote
	}

	if err := backend.Delete(ctx, locator, externalID); err != nil {
		log.Warn("fail to clean up blob after persistence failure", source,
			zap.String("locator", locator), zap.Error(err))
	}
}
