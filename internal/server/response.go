package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/identity/internal/apperrors"
	"github.com/skillsenselab/identity/internal/logger"
)

// RespondError inspects err: if it is an *apperrors.AppError the status and
// message are derived automatically; otherwise a generic 500 is sent. Server
// faults are logged with their cause, which never reaches the client.
func RespondError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]interface{}{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  appErr.Error(),
		})
	}
	c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
}
