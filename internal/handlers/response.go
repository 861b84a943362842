package handlers

import (
	"errors"
	"net/http"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	"github.com/devlogkr/blog_backend/internal/dto"
	"github.com/devlogkr/blog_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respond writes a success envelope with the given status.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.NewSuccessResponse(message, data))
}

// respondError maps an error onto the uniform failure envelope. AppError
// carries its own status and a client-safe message; anything else is an
// unexpected failure that gets logged and rendered as a bare 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, dto.NewErrorResponse(appErr.Message))
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error("Unhandled error", "error", err)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
}

// bindingError renders a request binding failure as a 400 envelope. The
// validator's error text names Go structs and fields, so it goes to the log
// and the client gets a stable message.
func bindingError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request binding failed", "error", err)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
}
