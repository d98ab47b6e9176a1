package service

import (
	"context"

	"blog-publishing-platform/internal/domain"
)

// PostServiceInterface defines the interface for post operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	// CreatePost creates a new draft post owned by the acting user.
	CreatePost(ctx context.Context, title, content string, user *domain.User) (*domain.Post, error)
	// EditPost updates title and/or content of a post owned by the acting user.
	EditPost(ctx context.Context, postID string, update domain.PostUpdate, user *domain.User) (*domain.Post, error)
	// Transition moves a post to the requested status if the acting user may.
	Transition(ctx context.Context, postID string, target domain.Status, user *domain.User) (*domain.Post, error)
	// GetPost retrieves a post by id.
	GetPost(ctx context.Context, postID string) (*domain.Post, error)
	// ListByAuthor lists the acting user's own posts.
	ListByAuthor(ctx context.Context, user *domain.User) ([]domain.Post, error)
	// ListInReview lists the review queue. Editors only.
	ListInReview(ctx context.Context, user *domain.User) ([]domain.Post, error)
	// ListPublished lists publicly visible posts.
	ListPublished(ctx context.Context) ([]domain.Post, error)
	// GetPublishedBySlug retrieves a publicly visible post by slug.
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error)
}

// AuthServiceInterface defines the interface for authentication operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Signup registers a new user and opens a session for them.
	Signup(ctx context.Context, name, email, password, role string) (*domain.User, string, error)
	// Login verifies credentials and opens a session.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Logout closes the session for the given token.
	Logout(ctx context.Context, token string) error
	// UserFromToken resolves a session token to its user.
	UserFromToken(ctx context.Context, token string) (*domain.User, error)
}
