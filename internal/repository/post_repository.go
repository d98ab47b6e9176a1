package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-publishing-platform/internal/domain"
)

const postColumns = "id, title, slug, content, status, author_id, created_at, updated_at"

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Status, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return &p, nil
}

// Insert stores a new post.
func (r *PostgresPostRepository) Insert(ctx context.Context, post *domain.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (id, title, slug, content, status, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, post.ID, post.Title, post.Slug, post.Content, post.Status, post.AuthorID)

	if err := row.Scan(&post.CreatedAt, &post.UpdatedAt); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID returns a post by id, or nil when it does not exist.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1
	`, id)
	return scanPost(row)
}

// UpdateStatus performs the conditional status write. The row must still be in
// the expected status for the update to apply; a nil result means zero rows
// matched, either because the post is gone or because a concurrent transition
// changed the status first.
func (r *PostgresPostRepository) UpdateStatus(ctx context.Context, id string, expected, next domain.Status) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE posts
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING `+postColumns+`
	`, next, id, expected)

	post, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("update post status: %w", err)
	}
	return post, nil
}

// UpdateContent updates author-editable fields, conditional on the post
// belonging to the given author. A nil result means no row matched the
// id+author pair.
func (r *PostgresPostRepository) UpdateContent(ctx context.Context, id, authorID string, update domain.PostUpdate) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE posts
		SET title = COALESCE($1, title),
		    slug = COALESCE($2, slug),
		    content = COALESCE($3, content),
		    updated_at = NOW()
		WHERE id = $4 AND author_id = $5
		RETURNING `+postColumns+`
	`, update.Title, slugFor(update.Title), update.Content, id, authorID)

	post, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("update post content: %w", err)
	}
	return post, nil
}

// slugFor recomputes the slug when the title changes, keeping the two
// consistent at the storage layer.
func slugFor(title *string) *string {
	if title == nil {
		return nil
	}
	slug := domain.Slugify(*title)
	return &slug
}

// ListByAuthor returns all posts by the given author, newest first.
func (r *PostgresPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
	`, authorID)
	if err != nil {
		return nil, fmt.Errorf("query posts by author: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListByStatus returns all posts in the given status, oldest first. Used for
// the editor review queue.
func (r *PostgresPostRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE status = $1
		ORDER BY created_at ASC
	`, status)
	if err != nil {
		return nil, fmt.Errorf("query posts by status: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListPublished returns all published posts, newest first.
func (r *PostgresPostRepository) ListPublished(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE status = $1
		ORDER BY created_at DESC
	`, domain.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("query published posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// GetPublishedBySlug returns a published post by slug, or nil. Posts in any
// other status are invisible through this accessor. Slugs are not unique;
// when several published posts share one, the newest wins.
func (r *PostgresPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE slug = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, slug, domain.StatusPublished)
	return scanPost(row)
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Status, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}
	return posts, nil
}
