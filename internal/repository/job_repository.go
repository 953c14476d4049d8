package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-site-api/internal/domain"
)

const (
	jobsTable  = "job_postings"
	jobColumns = `id, title, company, location, type, description, requirements, benefits,
		salary_min, salary_max, salary_currency, application_deadline, apply_url, is_active, created_at`
)

// PostgresJobPostingRepository implements JobPostingRepository using PostgreSQL.
type PostgresJobPostingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresJobPostingRepository creates a new PostgresJobPostingRepository.
func NewPostgresJobPostingRepository(pool *pgxpool.Pool) *PostgresJobPostingRepository {
	return &PostgresJobPostingRepository{pool: pool}
}

func scanJobPosting(row pgx.Row) (domain.JobPosting, error) {
	var j domain.JobPosting
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Description,
		&j.Requirements, &j.Benefits, &j.Salary.Min, &j.Salary.Max, &j.Salary.Currency,
		&j.ApplicationDeadline, &j.ApplyURL, &j.IsActive, &j.CreatedAt)
	return j, err
}

// Create inserts a job posting.
func (r *PostgresJobPostingRepository) Create(ctx context.Context, job *domain.JobPosting) error {
	defer observe(jobsTable, "create")()

	job.ID = uuid.New().String()
	job.Requirements = textArray(job.Requirements)
	job.Benefits = textArray(job.Benefits)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO job_postings (id, title, company, location, type, description, requirements, benefits,
			salary_min, salary_max, salary_currency, application_deadline, apply_url, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, COALESCE($15, NOW()))
		RETURNING created_at
	`, job.ID, job.Title, job.Company, job.Location, job.Type, job.Description,
		job.Requirements, job.Benefits, job.Salary.Min, job.Salary.Max, job.Salary.Currency,
		job.ApplicationDeadline, job.ApplyURL, job.IsActive, nullTime(job.CreatedAt)).Scan(&job.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert job posting: %w", err)
	}
	return nil
}

// List returns job postings newest first, optionally restricted to active ones.
func (r *PostgresJobPostingRepository) List(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error) {
	defer observe(jobsTable, "list")()

	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`
		FROM job_postings
		WHERE is_active OR NOT $1
		ORDER BY created_at DESC
	`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}

	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JobPosting, error) {
		return scanJobPosting(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan job postings: %w", err)
	}
	return jobs, nil
}

// GetByID retrieves a job posting regardless of its active flag.
func (r *PostgresJobPostingRepository) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	defer observe(jobsTable, "get")()

	job, err := scanJobPosting(r.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`
		FROM job_postings
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job posting: %w", err)
	}
	return &job, nil
}

// Update replaces every mutable field of a job posting and refreshes it from
// the stored row.
func (r *PostgresJobPostingRepository) Update(ctx context.Context, job *domain.JobPosting) error {
	defer observe(jobsTable, "update")()

	updated, err := scanJobPosting(r.pool.QueryRow(ctx, `
		UPDATE job_postings
		SET title = $2, company = $3, location = $4, type = $5, description = $6,
			requirements = $7, benefits = $8, salary_min = $9, salary_max = $10,
			salary_currency = $11, application_deadline = $12, apply_url = $13, is_active = $14
		WHERE id = $1
		RETURNING `+jobColumns,
		job.ID, job.Title, job.Company, job.Location, job.Type, job.Description,
		textArray(job.Requirements), textArray(job.Benefits), job.Salary.Min, job.Salary.Max,
		job.Salary.Currency, job.ApplicationDeadline, job.ApplyURL, job.IsActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update job posting: %w", err)
	}

	*job = updated
	return nil
}

// Delete removes a job posting by ID.
func (r *PostgresJobPostingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, jobsTable, id)
}
