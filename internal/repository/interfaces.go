package repository

import (
	"context"

	"content-site-api/internal/domain"
)

// ContactRepository defines methods for contact submission data access.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// BlogRepository defines methods for blog post data access.
type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// JobPostingRepository defines methods for job posting data access.
type JobPostingRepository interface {
	Create(ctx context.Context, job *domain.JobPosting) error
	List(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error)
	GetByID(ctx context.Context, id string) (*domain.JobPosting, error)
	Update(ctx context.Context, job *domain.JobPosting) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines methods for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// ChatRepository defines methods for chat message data access.
type ChatRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	List(ctx context.Context) ([]domain.ChatMessage, error)
	Delete(ctx context.Context, id string) error
}
