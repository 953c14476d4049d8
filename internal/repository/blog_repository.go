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
	blogTable   = "blog_posts"
	blogColumns = "id, title, content, excerpt, author, image, tags, published, slug, created_at"
)

// PostgresBlogRepository implements BlogRepository using PostgreSQL.
type PostgresBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository.
func NewPostgresBlogRepository(pool *pgxpool.Pool) *PostgresBlogRepository {
	return &PostgresBlogRepository{pool: pool}
}

func scanBlogPost(row pgx.Row) (domain.BlogPost, error) {
	var p domain.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.Author, &p.Image,
		&p.Tags, &p.Published, &p.Slug, &p.CreatedAt)
	return p, err
}

// Create inserts a blog post. A slug already taken by another post yields
// domain.ErrConflict.
func (r *PostgresBlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	defer observe(blogTable, "create")()

	post.ID = uuid.New().String()
	post.Tags = textArray(post.Tags)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO blog_posts (id, title, content, excerpt, author, image, tags, published, slug, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, NOW()))
		RETURNING created_at
	`, post.ID, post.Title, post.Content, post.Excerpt, post.Author, post.Image,
		post.Tags, post.Published, post.Slug, nullTime(post.CreatedAt)).Scan(&post.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slug %q already exists", domain.ErrConflict, post.Slug)
		}
		return fmt.Errorf("insert blog post: %w", err)
	}
	return nil
}

// List returns blog posts newest first, optionally restricted to published ones.
func (r *PostgresBlogRepository) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	defer observe(blogTable, "list")()

	rows, err := r.pool.Query(ctx, `
		SELECT `+blogColumns+`
		FROM blog_posts
		WHERE published OR NOT $1
		ORDER BY created_at DESC
	`, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BlogPost, error) {
		return scanBlogPost(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan blog posts: %w", err)
	}
	return posts, nil
}

// GetBySlug retrieves a blog post by slug.
func (r *PostgresBlogRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	defer observe(blogTable, "get")()

	post, err := scanBlogPost(r.pool.QueryRow(ctx, `
		SELECT `+blogColumns+`
		FROM blog_posts
		WHERE slug = $1 AND (published OR NOT $2)
	`, slug, publishedOnly))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post by slug: %w", err)
	}
	return &post, nil
}

// Update replaces the mutable fields of a blog post. The slug and creation
// time never change, and an empty Image keeps the stored image URL. The post
// is refreshed from the stored row.
func (r *PostgresBlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	defer observe(blogTable, "update")()

	updated, err := scanBlogPost(r.pool.QueryRow(ctx, `
		UPDATE blog_posts
		SET title = $2, content = $3, excerpt = $4, author = $5,
			image = COALESCE($6, image), tags = $7, published = $8
		WHERE id = $1
		RETURNING `+blogColumns,
		post.ID, post.Title, post.Content, post.Excerpt, post.Author,
		nullString(post.Image), textArray(post.Tags), post.Published))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}

	*post = updated
	return nil
}

// Delete removes a blog post by ID.
func (r *PostgresBlogRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, blogTable, id)
}
