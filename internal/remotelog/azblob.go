package remotelog

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
)

type blobUploader struct {
	client    *azblob.Client
	container string
}

// NewBlobUploader uploads into cfg.Container of the storage account at
// cfg.AccountUrl, authenticating with the default Azure credential chain
// (environment, managed identity, Azure CLI).
func NewBlobUploader(cfg settings.RemoteLogs) (Uploader, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	client, err := azblob.NewClient(cfg.AccountUrl, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client for '%s': %w", cfg.AccountUrl, err)
	}

	return &blobUploader{client: client, container: cfg.Container}, nil
}

func (u *blobUploader) Upload(ctx context.Context, key string, body io.Reader, size int64) error {
	_, err := u.client.UploadStream(ctx, u.container, key, body, nil)
	if err != nil {
		return fmt.Errorf("failed to upload blob '%s' to container '%s': %w", key, u.container, err)
	}

	return nil
}

func (u *blobUploader) Close() error {
	return nil
}
