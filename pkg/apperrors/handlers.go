package apperrors

import (
	"adboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every error. The body is always
// {"message": string}, regardless of the failure class.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HandleError renders err as an HTTP response. Non-AppError values are
// treated as internal errors; their cause is logged and hidden.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error",
			"code", string(appErr.Code),
			"domain", appErr.Domain,
			"error", appErr.Error(),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Message: appErr.Message})
}
