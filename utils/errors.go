package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotFoundError signals that a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ValidationError signals a malformed or inconsistent request.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ConflictError signals a unique-field collision (phone, order code).
type ConflictError struct {
	Field string
	Value string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("duplicate %s: %q already exists", e.Field, e.Value)
}

// DependencyError wraps a storage or downstream failure.
type DependencyError struct {
	Op  string
	Err error
}

func (e DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e DependencyError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps a service error onto an HTTP status code. Unknown
// errors are treated as internal failures.
func HTTPStatus(err error) int {
	var nf NotFoundError
	var ve ValidationError
	var ce ConflictError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ce):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the JSON shape of error replies.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// JSONError writes a structured error reply and logs it.
func JSONError(c *gin.Context, status int, message, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// ErrorHandler recovers from handler panics and replies with a
// structured 500 so one bad request never takes the server down.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("panic recovered", zap.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}
