package repository

import (
	"context"

	"blog-publishing-platform/internal/domain"
)

// PostRepository defines methods for post data access. The two conditional
// updates are the only write paths for existing posts: UpdateStatus matches on
// id plus the expected current status, UpdateContent matches on id plus the
// owning author. Both return nil when no row matched.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	UpdateStatus(ctx context.Context, id string, expected, next domain.Status) (*domain.Post, error)
	UpdateContent(ctx context.Context, id, authorID string, update domain.PostUpdate) (*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Post, error)
	ListPublished(ctx context.Context) ([]domain.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionRepository defines methods for session data access.
type SessionRepository interface {
	Create(ctx context.Context, token, userID string) error
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)
	Delete(ctx context.Context, token string) error
}
