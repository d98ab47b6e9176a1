package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"blog-publishing-platform/internal/domain"
	"blog-publishing-platform/internal/logger"
	"blog-publishing-platform/internal/metrics"
	"blog-publishing-platform/internal/repository"
	"blog-publishing-platform/internal/validator"
	"blog-publishing-platform/internal/workflow"
)

// PostService executes the post workflow: creation, author edits, and status
// transitions. Every status write goes through Transition so the policy and
// conditional-write discipline cannot be bypassed.
type PostService struct {
	posts     repository.PostRepository
	validator *validator.Validator
}

// NewPostService creates a new PostService.
func NewPostService(posts repository.PostRepository, v *validator.Validator) *PostService {
	return &PostService{
		posts:     posts,
		validator: v,
	}
}

// CreatePost creates a new post in DRAFT owned by the acting user. The slug
// is derived from the title; colliding slugs are accepted (the public view
// resolves a slug to one published post).
func (s *PostService) CreatePost(ctx context.Context, title, content string, user *domain.User) (*domain.Post, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := s.validator.ValidateNewPost(title, content); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &domain.Post{
		ID:        uuid.New().String(),
		Title:     title,
		Slug:      domain.Slugify(title),
		Content:   content,
		Status:    domain.StatusDraft,
		AuthorID:  user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		logger.ErrorContext(ctx, "Failed to insert post",
			slog.String("author_id", user.ID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("create post: %w", err)
	}

	metrics.PostsCreatedTotal.Inc()
	return post, nil
}

// EditPost updates title and/or content of a post the acting user owns.
// Status is never touched here; status changes go only through Transition.
// The write is conditional on id+author, so "not found" and "not owned"
// collapse into ErrPostNotOwned.
func (s *PostService) EditPost(ctx context.Context, postID string, update domain.PostUpdate, user *domain.User) (*domain.Post, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := s.validator.ValidatePostUpdate(update); err != nil {
		return nil, err
	}

	post, err := s.posts.UpdateContent(ctx, postID, user.ID, update)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update post content",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("edit post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotOwned
	}
	return post, nil
}

// Transition moves a post to the requested status on behalf of the acting
// user. Checks run in order: principal present, post exists, ownership for
// authors, then the policy against the persisted status. The final write is
// conditional on the status observed here; if a concurrent transition got
// there first the write matches zero rows and the caller sees
// ErrInvalidTransition. Callers may retry by re-reading.
func (s *PostService) Transition(ctx context.Context, postID string, target domain.Status, user *domain.User) (*domain.Post, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load post for transition",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("load post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	// Authors act only on their own posts, regardless of what the policy
	// would allow for the edge.
	if user.Role == domain.RoleAuthor && post.AuthorID != user.ID {
		return nil, domain.ErrForbidden
	}

	if !workflow.CanTransition(post.Status, target, user.Role) {
		metrics.ObserveTransition(string(post.Status), string(target), string(user.Role), metrics.TransitionRejected)
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.posts.UpdateStatus(ctx, postID, post.Status, target)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update post status",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("apply transition: %w", err)
	}
	if updated == nil {
		// Lost the race: another transition changed the status between
		// our read and our conditional write.
		metrics.ObserveTransition(string(post.Status), string(target), string(user.Role), metrics.TransitionConflict)
		return nil, domain.ErrInvalidTransition
	}

	metrics.ObserveTransition(string(post.Status), string(target), string(user.Role), metrics.TransitionApplied)
	logger.InfoContext(ctx, "Post status transition applied",
		slog.String("post_id", postID),
		slog.String("from", string(post.Status)),
		slog.String("to", string(target)),
		slog.String("role", string(user.Role)))
	return updated, nil
}

// GetPost retrieves a post by id.
func (s *PostService) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

// ListByAuthor lists the acting user's own posts for their dashboard.
func (s *PostService) ListByAuthor(ctx context.Context, user *domain.User) ([]domain.Post, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	posts, err := s.posts.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	return posts, nil
}

// ListInReview lists posts awaiting review, oldest first. Editors only.
func (s *PostService) ListInReview(ctx context.Context, user *domain.User) ([]domain.Post, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Role != domain.RoleEditor {
		return nil, domain.ErrForbidden
	}
	posts, err := s.posts.ListByStatus(ctx, domain.StatusInReview)
	if err != nil {
		return nil, fmt.Errorf("list posts in review: %w", err)
	}
	return posts, nil
}

// ListPublished lists publicly visible posts, newest first.
func (s *PostService) ListPublished(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return posts, nil
}

// GetPublishedBySlug retrieves a publicly visible post by slug.
func (s *PostService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.posts.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("load published post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}
