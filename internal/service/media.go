package service

import (
	"context"
	"fmt"

	"content-site-api/internal/domain"
	"content-site-api/internal/logger"
)

// uploadImage uploads file when present and returns its URL, or "" when
// there is nothing to upload.
func uploadImage(ctx context.Context, uploader MediaUploader, file *domain.MediaFile) (string, error) {
	if file == nil {
		return "", nil
	}
	url, err := uploader.Upload(ctx, *file)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}

// discardUpload removes an object uploaded for a write that did not persist.
// Failures are logged and otherwise ignored.
func discardUpload(ctx context.Context, uploader MediaUploader, url string) {
	if url == "" {
		return
	}
	if err := uploader.Delete(context.WithoutCancel(ctx), url); err != nil {
		logger.WarnContext(ctx, "Failed to remove orphaned upload", "url", url, "error", err)
	}
}
