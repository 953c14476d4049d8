package service

import (
	"context"

	"content-site-api/internal/domain"
)

// MediaUploader stores uploaded files and returns their public URLs.
type MediaUploader interface {
	Upload(ctx context.Context, file domain.MediaFile) (string, error)
	// Delete removes a previously uploaded object.
	Delete(ctx context.Context, url string) error
}

// Notifier delivers notifications to the site owner.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

// ContactServiceInterface defines contact-form operations.
// Used for dependency injection and mocking in tests.
type ContactServiceInterface interface {
	// Submit stores a contact submission and notifies the site owner.
	Submit(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// BlogServiceInterface defines blog post operations.
type BlogServiceInterface interface {
	// Create derives the slug from the title and stores the post. image may be nil.
	Create(ctx context.Context, post *domain.BlogPost, image *domain.MediaFile) error
	List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	// Update replaces the editable fields; the stored image is kept when image is nil.
	Update(ctx context.Context, post *domain.BlogPost, image *domain.MediaFile) error
	Delete(ctx context.Context, id string) error
}

// JobServiceInterface defines job posting operations.
type JobServiceInterface interface {
	Create(ctx context.Context, job *domain.JobPosting) error
	List(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error)
	Get(ctx context.Context, id string) (*domain.JobPosting, error)
	Update(ctx context.Context, job *domain.JobPosting) error
	Delete(ctx context.Context, id string) error
}

// ProductServiceInterface defines product catalog operations.
type ProductServiceInterface interface {
	Create(ctx context.Context, product *domain.Product, image *domain.MediaFile) error
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product, image *domain.MediaFile) error
	Delete(ctx context.Context, id string) error
}

// ChatServiceInterface defines chat log operations.
type ChatServiceInterface interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	List(ctx context.Context) ([]domain.ChatMessage, error)
	Delete(ctx context.Context, id string) error
}
