package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgUserExists    = "This user already exists."
	msgUserNotFound  = "User not found."
	msgInvalidUserID = "Invalid user id."
)

// respondServiceError maps a service error onto a status code.
// Store failures are reported as 400 with the underlying error text.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		abortWithText(c, http.StatusBadRequest, msgUserExists)
	case errors.Is(err, service.ErrUserNotFound):
		abortWithText(c, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, service.ErrValidationFailed):
		abortWithText(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR: [%s] %s %s: %v", requestIDFromContext(c), c.Request.Method, c.Request.URL.Path, err)
		abortWithText(c, http.StatusBadRequest, err.Error())
	}
}

// userIDParam parses the :_id path parameter. On failure it writes the 400
// response itself and reports false.
func userIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("_id"))
	if err != nil {
		abortWithText(c, http.StatusBadRequest, msgInvalidUserID)
		return primitive.NilObjectID, false
	}
	return id, true
}
