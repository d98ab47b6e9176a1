package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-publishing-platform/internal/domain"
	"blog-publishing-platform/internal/middleware"
	"blog-publishing-platform/internal/mocks"
)

const testSessionTTL = 24 * time.Hour

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("registers user and sets session cookie", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)

		user := &domain.User{
			ID:    uuid.New().String(),
			Name:  "Alice",
			Email: "alice@example.com",
			Role:  domain.RoleAuthor,
		}
		token := uuid.New().String()

		mockService.EXPECT().
			Signup(mock.Anything, "Alice", "alice@example.com", "s3cret-pass", "AUTHOR").
			Return(user, token, nil)

		router := gin.New()
		router.POST("/api/v1/auth/signup", handler.Signup)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup",
			jsonBody(t, SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pass", Role: "AUTHOR"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		cookie := sessionCookie(t, w)
		require.NotNil(t, cookie)
		assert.Equal(t, token, cookie.Value)
		assert.True(t, cookie.HttpOnly)

		var response UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, user.ID, response.ID)
		assert.Equal(t, "AUTHOR", response.Role)
		// The hash must never appear in the payload.
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("maps duplicate email to 409", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)

		mockService.EXPECT().
			Signup(mock.Anything, "Alice", "alice@example.com", "s3cret-pass", "AUTHOR").
			Return(nil, "", domain.ErrEmailTaken)

		router := gin.New()
		router.POST("/api/v1/auth/signup", handler.Signup)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup",
			jsonBody(t, SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pass", Role: "AUTHOR"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Nil(t, sessionCookie(t, w))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)

		router := gin.New()
		router.POST("/api/v1/auth/signup", handler.Signup)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials set session cookie", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)

		user := &domain.User{
			ID:    uuid.New().String(),
			Name:  "Alice",
			Email: "alice@example.com",
			Role:  domain.RoleAuthor,
		}
		token := uuid.New().String()

		mockService.EXPECT().
			Login(mock.Anything, "alice@example.com", "s3cret-pass").
			Return(user, token, nil)

		router := gin.New()
		router.POST("/api/v1/auth/login", handler.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			jsonBody(t, LoginRequest{Email: "alice@example.com", Password: "s3cret-pass"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookie(t, w)
		require.NotNil(t, cookie)
		assert.Equal(t, token, cookie.Value)
	})

	t.Run("bad credentials answer 401 without cookie", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)

		mockService.EXPECT().
			Login(mock.Anything, "alice@example.com", "wrong").
			Return(nil, "", domain.ErrInvalidCredentials)

		router := gin.New()
		router.POST("/api/v1/auth/login", handler.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			jsonBody(t, LoginRequest{Email: "alice@example.com", Password: "wrong"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, sessionCookie(t, w))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("deletes session and clears cookie", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)
		token := uuid.New().String()

		mockService.EXPECT().
			Logout(mock.Anything, token).
			Return(nil)

		router := gin.New()
		router.POST("/api/v1/auth/logout", handler.Logout)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookie(t, w)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("logout without cookie is a no-op", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)

		router := gin.New()
		router.POST("/api/v1/auth/logout", handler.Logout)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns current principal", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)
		editor := testEditor()

		router := gin.New()
		router.GET("/api/v1/auth/me", asUser(editor), handler.Me)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, editor.ID, response.ID)
		assert.Equal(t, "EDITOR", response.Role)
	})

	t.Run("anonymous caller answers 401", func(t *testing.T) {
		mockService := mocks.NewMockAuthServiceInterface(t)
		handler := NewAuthHandler(mockService, testSessionTTL, false)

		router := gin.New()
		router.GET("/api/v1/auth/me", handler.Me)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
