package service

import (
	"context"
	"fmt"

	"content-site-api/internal/domain"
	"content-site-api/internal/repository"
	"content-site-api/internal/validator"
)

// JobService handles job posting operations.
type JobService struct {
	repo      repository.JobPostingRepository
	validator *validator.Validator
}

// NewJobService creates a new JobService.
func NewJobService(repo repository.JobPostingRepository, v *validator.Validator) *JobService {
	return &JobService{
		repo:      repo,
		validator: v,
	}
}

// normalizeJob cleans the list fields the same way for create and update.
func normalizeJob(job *domain.JobPosting) {
	job.Requirements = domain.CleanList(job.Requirements)
	job.Benefits = domain.CleanList(job.Benefits)
}

// Create stores a new job posting.
func (s *JobService) Create(ctx context.Context, job *domain.JobPosting) error {
	normalizeJob(job)
	if err := s.validator.ValidateJobPosting(job); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return fmt.Errorf("store job posting: %w", err)
	}
	return nil
}

// List returns postings newest first, optionally only the active ones.
func (s *JobService) List(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error) {
	jobs, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	if jobs == nil {
		jobs = []domain.JobPosting{}
	}
	return jobs, nil
}

// Get returns a posting by id regardless of its active flag.
func (s *JobService) Get(ctx context.Context, id string) (*domain.JobPosting, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update replaces all editable fields of a posting.
func (s *JobService) Update(ctx context.Context, job *domain.JobPosting) error {
	if err := s.validator.ValidateID(job.ID); err != nil {
		return err
	}
	normalizeJob(job)
	if err := s.validator.ValidateJobPosting(job); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, job); err != nil {
		return fmt.Errorf("update job posting %s: %w", job.ID, err)
	}
	return nil
}

// Delete removes a posting by id.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
