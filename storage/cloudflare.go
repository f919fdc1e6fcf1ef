package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/cloudflare/cloudflare-go"
	"github.com/fatih/structs"

	"github.com/galeria-yaya/gallery-api/log"
)

const CloudflareImageDeliveryURL = "https://imagedelivery.net/%s/%s/public"

// CloudflareConfig carries the credential trio for the Cloudflare Images
// backend. The remote strategy is enabled only when all three values are
// present.
type CloudflareConfig struct {
	AccountID   string
	AccountHash string
	APIToken    string

	// Folder namespaces uploaded image names.
	Folder string

	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string

	Debug bool
}

// Enabled reports whether the credential trio is complete.
func (c CloudflareConfig) Enabled() bool {
	return c.AccountID != "" && c.AccountHash != "" && c.APIToken != ""
}

// CloudflareStore uploads blobs to Cloudflare Images and addresses them by
// the image ID the service assigns. Locators are public delivery URLs built
// from the account hash.
type CloudflareStore struct {
	accountHash string
	account     *cloudflare.ResourceContainer
	folder      string

	api *cloudflare.API
}

func NewCloudflareStore(cfg CloudflareConfig) (*CloudflareStore, error) {
	options := []cloudflare.Option{
		cloudflare.Debug(cfg.Debug),
		cloudflare.UsingLogger(log.CloudflareLogger()),
	}
	if cfg.BaseURL != "" {
		options = append(options, cloudflare.BaseURL(cfg.BaseURL))
	}

	api, err := cloudflare.NewWithAPIToken(cfg.APIToken, options...)
	if err != nil {
		return nil, err
	}

	return &CloudflareStore{
		accountHash: cfg.AccountHash,
		account: &cloudflare.ResourceContainer{
			Level:      cloudflare.AccountRouteLevel,
			Identifier: cfg.AccountID,
			Type:       cloudflare.AccountType,
		},
		folder: cfg.Folder,

		api: api,
	}, nil
}

// imageMetadata is attached to every upload so the host-side record keeps the
// original name and sniffed type.
type imageMetadata struct {
	Filename string `structs:"filename"`
	MimeType string `structs:"mime_type"`
}

// Store uploads the stream under the configured folder and returns the public
// delivery URL plus the assigned image ID.
func (s *CloudflareStore) Store(ctx context.Context, file io.Reader, name, mimeType string) (string, string, error) {
	image, err := s.api.UploadImage(ctx, s.account, cloudflare.UploadImageParams{
		File: io.NopCloser(file),
		Name: path.Join(s.folder, name),
		Metadata: structs.Map(imageMetadata{
			Filename: name,
			MimeType: mimeType,
		}),
	})
	if err != nil {
		return "", "", err
	}

	return fmt.Sprintf(CloudflareImageDeliveryURL, s.accountHash, image.ID), image.ID, nil
}

// Delete removes the remote blob by its image ID.
func (s *CloudflareStore) Delete(ctx context.Context, _, externalID string) error {
	return s.api.DeleteImage(ctx, s.account, externalID)
}
