// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard-backend/internal/apperr"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; it returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

// MustExtractUser is ExtractUser for handlers behind RequireAuth.
// On failure it aborts with 401 and ok is false.
func MustExtractUser(c *gin.Context) (user model.User, ok bool) {
	user, err := ExtractUser(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return model.User{}, false
	}
	return user, true
}

// RespondError writes err as an ErrorResponse with the status of its code.
// Internal errors are logged and replaced by a generic message.
func RespondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.With(zap.String("request_id", c.GetString("request_id"))).
			Error("Request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
	}

	resp := ErrorResponse{Error: apperr.Message(err)}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		resp.Fields = appErr.Fields
	}
	c.AbortWithStatusJSON(status, resp)
}
