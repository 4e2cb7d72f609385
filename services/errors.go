package services

import (
	"errors"
	"log"
	"net/http"

	"fittrack/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound covers both an absent id and an id owned by another user; the
// two cases are indistinguishable to the caller so ownership never leaks.
var ErrNotFound = errors.New("not found")

// ErrInvalidIndex reports an embedded-collection index out of bounds.
var ErrInvalidIndex = errors.New("invalid index")

// respondError maps the service error taxonomy onto HTTP responses.
func respondError(c *gin.Context, err error, entity string) {
	var fieldErrs models.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldErrs})
	case errors.Is(err, ErrNotFound), errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, ErrInvalidIndex):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal index"})
	case errors.Is(err, models.ErrInvalidServing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: store error: %v", entity, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondBindError turns a ShouldBindJSON failure into either a structured
// validation response listing every offending field, or a generic 400 for
// payloads that did not parse at all.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(models.FieldErrors, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, models.FieldError{
				Field:   fe.Namespace(),
				Message: models.DescribeViolation(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
}
