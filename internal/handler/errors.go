package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-publishing-platform/internal/domain"
	"blog-publishing-platform/internal/middleware"
)

// respondError translates service errors into HTTP responses. Anything not
// in the taxonomy is treated as a storage fault: logged with the request id
// and answered with a generic 500 body.
func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": verrs})
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrPostNotOwned):
		// ErrPostNotOwned answers 404 so an edit probe cannot tell a
		// missing post from someone else's post.
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrPostNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("[request_id=%s] Internal error: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
