package service

import (
	"context"
	"fmt"

	"content-site-api/internal/domain"
	"content-site-api/internal/repository"
	"content-site-api/internal/validator"
)

// BlogService handles blog post operations.
type BlogService struct {
	repo      repository.BlogRepository
	uploader  MediaUploader
	validator *validator.Validator
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repository.BlogRepository, uploader MediaUploader, v *validator.Validator) *BlogService {
	return &BlogService{
		repo:      repo,
		uploader:  uploader,
		validator: v,
	}
}

// Create derives the slug from the title, uploads the optional image and
// stores the post. The upload is removed again if the store rejects the post.
func (s *BlogService) Create(ctx context.Context, post *domain.BlogPost, image *domain.MediaFile) error {
	post.Slug = domain.Slugify(post.Title)
	post.Tags = domain.CleanList(post.Tags)

	if err := s.validator.ValidateBlogPost(post); err != nil {
		return err
	}
	if post.Slug == "" {
		return validator.NewFieldError("title", "title_without_slug", "title must contain at least one letter or digit")
	}

	url, err := uploadImage(ctx, s.uploader, image)
	if err != nil {
		return err
	}
	post.Image = url

	if err := s.repo.Create(ctx, post); err != nil {
		discardUpload(ctx, s.uploader, url)
		return fmt.Errorf("store blog post: %w", err)
	}
	return nil
}

// List returns posts newest first, optionally only the published ones.
func (s *BlogService) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	posts, err := s.repo.List(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	return posts, nil
}

// GetBySlug returns a published post.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug, true)
}

// Update replaces the editable fields of a post. The slug never changes and
// the stored image is kept unless a new one is supplied.
func (s *BlogService) Update(ctx context.Context, post *domain.BlogPost, image *domain.MediaFile) error {
	if err := s.validator.ValidateID(post.ID); err != nil {
		return err
	}
	post.Slug = ""
	post.Image = ""
	post.Tags = domain.CleanList(post.Tags)

	if err := s.validator.ValidateBlogPost(post); err != nil {
		return err
	}

	url, err := uploadImage(ctx, s.uploader, image)
	if err != nil {
		return err
	}
	post.Image = url

	if err := s.repo.Update(ctx, post); err != nil {
		discardUpload(ctx, s.uploader, url)
		return fmt.Errorf("update blog post %s: %w", post.ID, err)
	}
	return nil
}

// Delete removes a post by id.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
