package service

import (
	"context"
	"fmt"

	"content-site-api/internal/domain"
	"content-site-api/internal/repository"
	"content-site-api/internal/validator"
)

// ProductService handles product catalog operations.
type ProductService struct {
	repo      repository.ProductRepository
	uploader  MediaUploader
	validator *validator.Validator
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, uploader MediaUploader, v *validator.Validator) *ProductService {
	return &ProductService{
		repo:      repo,
		uploader:  uploader,
		validator: v,
	}
}

// Create uploads the optional image and stores the product.
func (s *ProductService) Create(ctx context.Context, product *domain.Product, image *domain.MediaFile) error {
	if err := s.validator.ValidateProduct(product); err != nil {
		return err
	}

	url, err := uploadImage(ctx, s.uploader, image)
	if err != nil {
		return err
	}
	product.Image = url

	if err := s.repo.Create(ctx, product); err != nil {
		discardUpload(ctx, s.uploader, url)
		return fmt.Errorf("store product: %w", err)
	}
	return nil
}

// List returns all products, newest first.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Update replaces the product fields; the image only changes when a new
// file is supplied.
func (s *ProductService) Update(ctx context.Context, product *domain.Product, image *domain.MediaFile) error {
	if err := s.validator.ValidateID(product.ID); err != nil {
		return err
	}
	if err := s.validator.ValidateProduct(product); err != nil {
		return err
	}

	url, err := uploadImage(ctx, s.uploader, image)
	if err != nil {
		return err
	}
	product.Image = url

	if err := s.repo.Update(ctx, product); err != nil {
		discardUpload(ctx, s.uploader, url)
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}
	return nil
}

// Delete removes a product by id.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
