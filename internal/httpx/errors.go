package httpx

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ropa-market/internal/apperr"
)

// HTTPError is the JSON body of every failed request.
// swagger:model
type HTTPError struct {
	// example: order not found
	Error string `json:"error"`
}

func statusFor(k apperr.Kind) int {
	switch k {
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error translates err into a status code and aborts the request.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		log.Printf("[http] rid=%s %s %s error: %v", RequestIDFrom(c), c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(statusFor(kind), HTTPError{Error: apperr.Message(err)})
}

// BadRequest is shorthand for a validation failure raised by the HTTP layer itself.
func BadRequest(c *gin.Context, msg string) {
	Error(c, apperr.New(apperr.Validation, msg))
}
