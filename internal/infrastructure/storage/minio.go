// Package storage uploads media files to S3-compatible object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"content-site-api/internal/config"
	"content-site-api/internal/domain"
	"content-site-api/internal/logger"
	"content-site-api/internal/metrics"
)

const defaultContentType = "application/octet-stream"

// objectStore is the subset of the MinIO client used by the uploader.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts miniogo.PutObjectOptions) (miniogo.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts miniogo.RemoveObjectOptions) error
}

// MinioUploader stores images in a MinIO bucket and hands back public URLs.
type MinioUploader struct {
	store   objectStore
	bucket  string
	folder  string
	baseURL string
}

// NewMinioUploader connects to MinIO and makes sure the bucket exists and is
// publicly readable under the upload folder.
func NewMinioUploader(ctx context.Context, cfg config.StorageConfig) (*MinioUploader, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, miniogo.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("Created media bucket", "bucket", cfg.Bucket)
	}

	if err := client.SetBucketPolicy(ctx, cfg.Bucket, publicReadPolicy(cfg.Bucket, cfg.Folder)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	return newMinioUploader(client, cfg.Bucket, cfg.Folder, cfg.ObjectBaseURL()), nil
}

func newMinioUploader(store objectStore, bucket, folder, baseURL string) *MinioUploader {
	return &MinioUploader{
		store:   store,
		bucket:  bucket,
		folder:  strings.Trim(folder, "/"),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload stores the file under a fresh key and returns its public URL.
func (u *MinioUploader) Upload(ctx context.Context, file domain.MediaFile) (string, error) {
	if file.Content == nil {
		return "", errors.New("upload: empty file")
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	key := u.objectKey(file.Filename)
	info, err := u.store.PutObject(ctx, u.bucket, key, file.Content, file.Size, miniogo.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-filename": path.Base(filepath.ToSlash(file.Filename)),
		},
	})
	metrics.MediaUploadsTotal.WithLabelValues("upload", metrics.Result(err)).Inc()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	metrics.MediaUploadBytes.Add(float64(info.Size))

	logger.Debug("Uploaded media object", "object_key", key, "size", info.Size)
	return u.objectURL(key), nil
}

// Delete removes an object previously returned by Upload. URLs that do not
// point into this bucket are ignored.
func (u *MinioUploader) Delete(ctx context.Context, url string) error {
	key, ok := u.keyFromURL(url)
	if !ok {
		return nil
	}

	err := u.store.RemoveObject(ctx, u.bucket, key, miniogo.RemoveObjectOptions{})
	metrics.MediaUploadsTotal.WithLabelValues("delete", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// objectKey generates a unique key that keeps the original extension.
// Format: {folder}/{uuid}{ext}
func (u *MinioUploader) objectKey(filename string) string {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	if u.folder == "" {
		return name
	}
	return u.folder + "/" + name
}

func (u *MinioUploader) objectURL(key string) string {
	return u.baseURL + "/" + u.bucket + "/" + key
}

func (u *MinioUploader) keyFromURL(url string) (string, bool) {
	prefix := u.baseURL + "/" + u.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

// publicReadPolicy allows anonymous GetObject on the upload folder.
func publicReadPolicy(bucket, folder string) string {
	resource := "arn:aws:s3:::" + bucket + "/*"
	if f := strings.Trim(folder, "/"); f != "" {
		resource = "arn:aws:s3:::" + bucket + "/" + f + "/*"
	}
	return `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},` +
		`"Action":["s3:GetObject"],"Resource":["` + resource + `"]}]}`
}
