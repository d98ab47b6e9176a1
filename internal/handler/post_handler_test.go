package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-publishing-platform/internal/domain"
	"blog-publishing-platform/internal/middleware"
	"blog-publishing-platform/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser injects an authenticated principal the way the session middleware
// would.
func asUser(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.UserKey, user)
		}
		c.Next()
	}
}

func testAuthor() *domain.User {
	return &domain.User{
		ID:    uuid.New().String(),
		Name:  "Alice Author",
		Email: "alice@example.com",
		Role:  domain.RoleAuthor,
	}
}

func testEditor() *domain.User {
	return &domain.User{
		ID:    uuid.New().String(),
		Name:  "Eve Editor",
		Email: "eve@example.com",
		Role:  domain.RoleEditor,
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestPostHandler_CreatePost(t *testing.T) {
	t.Run("creates draft", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()

		now := time.Now()
		created := &domain.Post{
			ID:        uuid.New().String(),
			Title:     "My First Post",
			Slug:      "my-first-post",
			Content:   "Hello",
			Status:    domain.StatusDraft,
			AuthorID:  author.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		mockService.EXPECT().
			CreatePost(mock.Anything, "My First Post", "Hello", author).
			Return(created, nil)

		router := gin.New()
		router.POST("/api/v1/posts", asUser(author), handler.CreatePost)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
			jsonBody(t, CreatePostRequest{Title: "My First Post", Content: "Hello"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response PostResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, "my-first-post", response.Slug)
		assert.Equal(t, "DRAFT", response.Status)
	})

	t.Run("rejects anonymous caller", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)

		mockService.EXPECT().
			CreatePost(mock.Anything, "Title", "Body", (*domain.User)(nil)).
			Return(nil, domain.ErrUnauthorized)

		router := gin.New()
		router.POST("/api/v1/posts", asUser(nil), handler.CreatePost)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
			jsonBody(t, CreatePostRequest{Title: "Title", Content: "Body"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("maps validation failure to 400", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()

		verr := validation.Errors{"title": validation.NewError("validation_required", "cannot be blank")}
		mockService.EXPECT().
			CreatePost(mock.Anything, "", "Body", author).
			Return(nil, verr)

		router := gin.New()
		router.POST("/api/v1/posts", asUser(author), handler.CreatePost)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
			jsonBody(t, CreatePostRequest{Content: "Body"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)

		router := gin.New()
		router.POST("/api/v1/posts", asUser(testAuthor()), handler.CreatePost)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostHandler_UpdatePost(t *testing.T) {
	t.Run("updates owned post", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()
		postID := uuid.New().String()
		newTitle := "Better Title"

		updated := &domain.Post{
			ID:       postID,
			Title:    newTitle,
			Slug:     "better-title",
			Status:   domain.StatusDraft,
			AuthorID: author.ID,
		}
		mockService.EXPECT().
			EditPost(mock.Anything, postID, domain.PostUpdate{Title: &newTitle}, author).
			Return(updated, nil)

		router := gin.New()
		router.PATCH("/api/v1/posts/:id", asUser(author), handler.UpdatePost)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/posts/"+postID,
			jsonBody(t, UpdatePostRequest{Title: &newTitle}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response PostResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "better-title", response.Slug)
	})

	t.Run("answers 404 for posts the caller does not own", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()
		postID := uuid.New().String()
		newTitle := "Better Title"

		mockService.EXPECT().
			EditPost(mock.Anything, postID, domain.PostUpdate{Title: &newTitle}, author).
			Return(nil, domain.ErrPostNotOwned)

		router := gin.New()
		router.PATCH("/api/v1/posts/:id", asUser(author), handler.UpdatePost)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/posts/"+postID,
			jsonBody(t, UpdatePostRequest{Title: &newTitle}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "post not found")
	})

	t.Run("rejects non-UUID id", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)

		router := gin.New()
		router.PATCH("/api/v1/posts/:id", asUser(testAuthor()), handler.UpdatePost)

		title := "x"
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/posts/not-a-uuid",
			jsonBody(t, UpdatePostRequest{Title: &title}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostHandler_TransitionPost(t *testing.T) {
	t.Run("applies transition", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()
		postID := uuid.New().String()

		moved := &domain.Post{
			ID:       postID,
			Status:   domain.StatusInReview,
			AuthorID: author.ID,
		}
		mockService.EXPECT().
			Transition(mock.Anything, postID, domain.StatusInReview, author).
			Return(moved, nil)

		router := gin.New()
		router.POST("/api/v1/posts/:id/status", asUser(author), handler.TransitionPost)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/"+postID+"/status",
			jsonBody(t, TransitionRequest{Status: "IN_REVIEW"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response PostResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "IN_REVIEW", response.Status)
	})

	t.Run("maps illegal transition to 409", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()
		postID := uuid.New().String()

		mockService.EXPECT().
			Transition(mock.Anything, postID, domain.StatusPublished, author).
			Return(nil, domain.ErrInvalidTransition)

		router := gin.New()
		router.POST("/api/v1/posts/:id/status", asUser(author), handler.TransitionPost)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/"+postID+"/status",
			jsonBody(t, TransitionRequest{Status: "PUBLISHED"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("maps foreign post to 403", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()
		postID := uuid.New().String()

		mockService.EXPECT().
			Transition(mock.Anything, postID, domain.StatusInReview, author).
			Return(nil, domain.ErrForbidden)

		router := gin.New()
		router.POST("/api/v1/posts/:id/status", asUser(author), handler.TransitionPost)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/"+postID+"/status",
			jsonBody(t, TransitionRequest{Status: "IN_REVIEW"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		postID := uuid.New().String()

		router := gin.New()
		router.POST("/api/v1/posts/:id/status", asUser(testAuthor()), handler.TransitionPost)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/"+postID+"/status",
			jsonBody(t, TransitionRequest{Status: "ARCHIVED"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostHandler_Lists(t *testing.T) {
	t.Run("author dashboard", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()

		posts := []domain.Post{
			{ID: uuid.New().String(), Title: "One", Status: domain.StatusDraft, AuthorID: author.ID},
			{ID: uuid.New().String(), Title: "Two", Status: domain.StatusRejected, AuthorID: author.ID},
		}
		mockService.EXPECT().
			ListByAuthor(mock.Anything, author).
			Return(posts, nil)

		router := gin.New()
		router.GET("/api/v1/me/posts", asUser(author), handler.ListMyPosts)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/posts", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Posts []PostResponse `json:"posts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Posts, 2)
	})

	t.Run("review queue forbidden for authors", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		author := testAuthor()

		mockService.EXPECT().
			ListInReview(mock.Anything, author).
			Return(nil, domain.ErrForbidden)

		router := gin.New()
		router.GET("/api/v1/review/queue", asUser(author), handler.ReviewQueue)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/review/queue", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("review queue for editors", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewPostHandler(mockService)
		editor := testEditor()

		posts := []domain.Post{{ID: uuid.New().String(), Status: domain.StatusInReview}}
		mockService.EXPECT().
			ListInReview(mock.Anything, editor).
			Return(posts, nil)

		router := gin.New()
		router.GET("/api/v1/review/queue", asUser(editor), handler.ReviewQueue)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/review/queue", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Posts []PostResponse `json:"posts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Posts, 1)
	})
}

func TestFeedHandler(t *testing.T) {
	t.Run("lists published posts without auth", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewFeedHandler(mockService)

		posts := []domain.Post{
			{ID: uuid.New().String(), Title: "Live", Slug: "live", Status: domain.StatusPublished},
		}
		mockService.EXPECT().
			ListPublished(mock.Anything).
			Return(posts, nil)

		router := gin.New()
		router.GET("/api/v1/feed", handler.ListPublished)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "live")
	})

	t.Run("resolves slug to published post", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewFeedHandler(mockService)

		post := &domain.Post{
			ID:     uuid.New().String(),
			Title:  "Live",
			Slug:   "live",
			Status: domain.StatusPublished,
		}
		mockService.EXPECT().
			GetPublishedBySlug(mock.Anything, "live").
			Return(post, nil)

		router := gin.New()
		router.GET("/api/v1/feed/:slug", handler.GetBySlug)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed/live", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response PostResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, post.ID, response.ID)
	})

	t.Run("unknown slug answers 404", func(t *testing.T) {
		mockService := mocks.NewMockPostServiceInterface(t)
		handler := NewFeedHandler(mockService)

		mockService.EXPECT().
			GetPublishedBySlug(mock.Anything, "ghost").
			Return(nil, domain.ErrPostNotFound)

		router := gin.New()
		router.GET("/api/v1/feed/:slug", handler.GetBySlug)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed/ghost", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
