package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-publishing-platform/internal/service"
)

// FeedHandler serves the public, unauthenticated view: published posts only.
type FeedHandler struct {
	postService service.PostServiceInterface
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(postService service.PostServiceInterface) *FeedHandler {
	return &FeedHandler{
		postService: postService,
	}
}

// ListPublished handles GET /api/v1/feed
func (h *FeedHandler) ListPublished(c *gin.Context) {
	posts, err := h.postService.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": toPostListResponse(posts)})
}

// GetBySlug handles GET /api/v1/feed/:slug
func (h *FeedHandler) GetBySlug(c *gin.Context) {
	post, err := h.postService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}
